//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/maverickkamal/scio-planning/internal/model"
)

type DBRepo interface {
	AddEntries(ctx context.Context, chatID string, entries map[int64]model.Entry) error
	GetMessages(ctx context.Context, chatID string) ([]model.Entry, error)
	Rename(ctx context.Context, chatID, newTitle string) error
	ListSummaries(ctx context.Context) (*model.ChatSummaryList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type ReplyProvider interface {
	Reply(ctx context.Context, callerID, message string) (string, error)
}

type Validator interface {
	ValidateAppend(req *AppendChatRequest) error
	ValidateRename(req *RenameChatRequest) error
}
