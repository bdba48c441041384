package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/maverickkamal/scio-planning/internal/config"
	"github.com/maverickkamal/scio-planning/internal/model"
)

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

// Handler merges one published exchange into the durable conversation
// record. Malformed events are logged and skipped; the topic is the
// reconciliation path between live sessions and stored history, so a bad
// event must never wedge the consumer.
func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ExchangeHandler")

	var event Event
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal exchange event: %v", err))
		return
	}

	if event.ChatID == "" || len(event.Entries) == 0 {
		logger.Error("exchange event is missing chat_id or entries")
		return
	}

	entries := make(map[int64]model.Entry, len(event.Entries))
	for key, entry := range event.Entries {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			logger.Error(fmt.Sprintf("skipping entry with non-numeric message id %q", key))
			continue
		}
		entries[id] = entry
	}

	if len(entries) == 0 {
		return
	}

	if err := h.repository.AddEntries(ctx, event.ChatID, entries); err != nil {
		logger.Error(fmt.Sprintf("failed to save exchange entries: %v", err))
	}
}
