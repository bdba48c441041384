package conversation

import (
	"sync"
	"time"

	"github.com/maverickkamal/scio-planning/internal/model"
)

// FallbackErrorText is the user-safe content of a synthetic assistant
// message appended when an exchange fails.
const FallbackErrorText = "I'm sorry, but I encountered an error. Please try again."

// Log is the ordered message sequence of one active conversation and the
// single source of truth for what gets rendered. Insertion order equals
// chronological order: ids are Unix-millisecond derived and bumped past the
// previous id when two messages land within the same millisecond.
type Log struct {
	mu       sync.Mutex
	messages model.MessageList
	lastID   int64
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id

	return id
}

// Append creates a message with a fresh id and adds it to the tail.
func (l *Log) Append(role, content string, attachments []model.Attachment) model.Message {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := model.Message{
		ID:          l.nextID(),
		Role:        role,
		Content:     content,
		Attachments: attachments,
	}
	l.messages = append(l.messages, message)

	return message
}

// ReplaceFrom rewrites the message with the given id in place and discards
// everything after it, including any assistant reply. Both edit and retry
// go through here. An unknown id leaves the log untouched and returns false.
func (l *Log) ReplaceFrom(id int64, content string, attachments []model.Attachment) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, message := range l.messages {
		if message.ID == id {
			message.Content = content
			message.Attachments = attachments
			l.messages[i] = message
			l.messages = l.messages[:i+1]

			return true
		}
	}

	return false
}

func (l *Log) AppendAssistantReply(content string) model.Message {
	return l.Append(model.AssistantRole, content, nil)
}

func (l *Log) AppendAssistantError() model.Message {
	return l.Append(model.AssistantRole, FallbackErrorText, nil)
}

// Clear empties the sequence. The next id still increases monotonically so
// a reused log never mints a duplicate.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = nil
}

// Messages returns a snapshot of the sequence in chronological order.
func (l *Log) Messages() model.MessageList {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make(model.MessageList, len(l.messages))
	copy(snapshot, l.messages)

	return snapshot
}

// LastHuman returns the most recent human message, if any.
func (l *Log) LastHuman() (model.Message, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := len(l.messages) - 1; i >= 0; i-- {
		if l.messages[i].Role == model.HumanRole {
			return l.messages[i], true
		}
	}

	return model.Message{}, false
}

// Len reports the number of messages in the sequence.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.messages)
}
