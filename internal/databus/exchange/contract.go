//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package exchange

import (
	"context"

	"github.com/maverickkamal/scio-planning/internal/model"
)

type DBRepo interface {
	AddEntries(ctx context.Context, chatID string, entries map[int64]model.Entry) error
}
