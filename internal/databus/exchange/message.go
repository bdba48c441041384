package exchange

import "github.com/maverickkamal/scio-planning/internal/model"

// Event is one completed exchange published for durable storage: entry
// values keyed by stringified message id, exactly the shape of the stored
// record.
type Event struct {
	ChatID  string                 `json:"chat_id"`
	Entries map[string]model.Entry `json:"entries"`
}
