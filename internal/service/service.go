package service

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/maverickkamal/scio-planning/internal/config"
)

const systemPrompt = "You are a study-planning assistant. Help the user turn their goals into a concrete study schedule."

// Service produces the assistant turn of a simulated exchange. Without an
// OpenAI key it echoes the canned simulation string; with one it asks the
// model instead.
type Service struct {
	ai      *openai.Client
	aiModel string
}

func New(cfg *config.Config) *Service {
	s := &Service{
		aiModel: cfg.Assistant.Model,
	}

	if cfg.Assistant.OpenAIKey != "" {
		s.ai = openai.NewClient(cfg.Assistant.OpenAIKey)
	}

	return s
}

// Reply produces the assistant turn. callerID is the verified caller
// subject, empty for anonymous requests; the OpenAI path forwards it as the
// end-user identifier.
func (s *Service) Reply(ctx context.Context, callerID, message string) (string, error) {
	if s.ai == nil {
		return fmt.Sprintf("This is a simulated response to: %q", message), nil
	}

	resp, err := s.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.aiModel,
		User:  callerID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat completion returned no content")
	}

	return resp.Choices[0].Message.Content, nil
}
