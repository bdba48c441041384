package model

const (
	HumanRole     = "human"
	AssistantRole = "assistant"
)

type MessageList []Message

// Message is one turn of the live conversation. IDs are Unix-millisecond
// derived, strictly increasing within a conversation, and double as the
// chronological sort key.
type Message struct {
	ID          int64        `json:"id"`
	Role        string       `json:"role"`
	Content     string       `json:"content"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Entry is the persisted {role, content} pair stored under a stringified
// message id in a conversation record.
type Entry struct {
	Role    string `db:"role" json:"role"`
	Content string `db:"content" json:"content"`
}
