package validator

import (
	"fmt"
	"strings"

	"github.com/maverickkamal/scio-planning/internal/rest"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateAppend(req *rest.AppendChatRequest) error {
	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("message is required")
	}

	if strings.TrimSpace(req.ChatID) == "" {
		return fmt.Errorf("chatId is required")
	}

	return nil
}

func (v *Validator) ValidateRename(req *rest.RenameChatRequest) error {
	if strings.TrimSpace(req.ChatID) == "" || strings.TrimSpace(req.NewTitle) == "" {
		return fmt.Errorf("Chat ID and new title are required")
	}

	return nil
}
