//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package coordinator

import (
	"context"

	"github.com/maverickkamal/scio-planning/internal/model"
)

type AssistantClient interface {
	Exchange(ctx context.Context, callerID, content string, attachments []model.Attachment) (string, error)
}
