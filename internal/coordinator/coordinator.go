package coordinator

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/maverickkamal/scio-planning/internal/attachment"
	"github.com/maverickkamal/scio-planning/internal/config"
	"github.com/maverickkamal/scio-planning/internal/conversation"
	"github.com/maverickkamal/scio-planning/internal/model"
)

// Coordinator gates and sequences exchanges with the assistant backend and
// maps their outcomes back into conversation log mutations. At most one
// exchange is in flight per conversation; a send attempted while busy is
// dropped, not queued. No exchange outcome is ever fatal to the session:
// failures become a synthetic assistant message and the busy flag always
// clears.
type Coordinator struct {
	log         *conversation.Log
	attachments *attachment.Store
	assistant   AssistantClient
	callerID    string
	timeout     time.Duration

	mu   sync.Mutex
	busy bool
}

func New(
	log *conversation.Log,
	attachments *attachment.Store,
	assistant AssistantClient,
	callerID string,
	timeout time.Duration,
) *Coordinator {
	return &Coordinator{
		log:         log,
		attachments: attachments,
		assistant:   assistant,
		callerID:    callerID,
		timeout:     timeout,
	}
}

// Busy reports whether an exchange is currently in flight. The UI disables
// send affordances while this is true.
func (c *Coordinator) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.busy
}

func (c *Coordinator) acquire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return false
	}
	c.busy = true

	return true
}

func (c *Coordinator) release() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.busy = false
}

// Send appends a new human message carrying the pending attachments and
// runs one exchange. An empty submission (no text, no pending attachments)
// is rejected before any state changes.
func (c *Coordinator) Send(ctx context.Context, content string) error {
	if strings.TrimSpace(content) == "" && len(c.attachments.Pending()) == 0 {
		return model.ErrEmptySubmission
	}

	if !c.acquire() {
		return model.ErrBusy
	}
	defer c.release()

	// The previous human message leaves the retry window once a new one
	// lands, so its payloads are no longer needed.
	if prev, ok := c.log.LastHuman(); ok {
		c.attachments.Release(prev.Attachments)
	}

	attachments := c.attachments.Take()
	c.log.Append(model.HumanRole, content, attachments)

	c.exchange(ctx, content, attachments)

	return nil
}

// RetryLast reissues the exchange for the most recent human message,
// discarding any assistant reply it already has.
func (c *Coordinator) RetryLast(ctx context.Context) error {
	last, ok := c.log.LastHuman()
	if !ok {
		return fmt.Errorf("no human message to retry")
	}

	return c.resend(ctx, last.ID, last.Content, last.Attachments)
}

// EditLast rewrites the most recent human message and reissues its
// exchange. Editing any earlier message is refused before anything is
// mutated or sent.
func (c *Coordinator) EditLast(ctx context.Context, id int64, newContent string) error {
	if strings.TrimSpace(newContent) == "" {
		return model.ErrEmptySubmission
	}

	last, ok := c.log.LastHuman()
	if !ok || last.ID != id {
		return model.ErrNotLatest
	}

	if err := c.resend(ctx, id, newContent, nil); err != nil {
		return err
	}
	c.attachments.Release(last.Attachments)

	return nil
}

func (c *Coordinator) resend(ctx context.Context, id int64, content string, attachments []model.Attachment) error {
	if !c.acquire() {
		return model.ErrBusy
	}
	defer c.release()

	if ok := c.log.ReplaceFrom(id, content, attachments); !ok {
		return fmt.Errorf("message %d is no longer in the conversation", id)
	}

	c.exchange(ctx, content, attachments)

	return nil
}

// exchange runs one round trip against the assistant backend. Transport
// failures, timeouts and malformed replies all land as the same synthetic
// assistant error message and are logged for diagnostics only.
func (c *Coordinator) exchange(ctx context.Context, content string, attachments []model.Attachment) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reply, err := c.assistant.Exchange(ctx, c.callerID, content, attachments)
	if err != nil {
		logger.Error(fmt.Sprintf("assistant exchange failed: %v", err))
		c.log.AppendAssistantError()

		return
	}

	c.log.AppendAssistantReply(reply)
}
