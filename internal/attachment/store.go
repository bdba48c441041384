package attachment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/maverickkamal/scio-planning/internal/config"
	"github.com/maverickkamal/scio-planning/internal/model"
)

// Store holds the attachments selected for the next human turn. Each add
// materializes the payload to a transient local file; Take hands the
// pending set to the send path and clears it, success or failure.
type Store struct {
	mu         sync.Mutex
	pending    []model.Attachment
	dir        string
	maxCount   int
	maxBytes   int64
	mediaTypes map[string]struct{}
}

func New(cfg *config.Config) *Store {
	dir := cfg.Attachments.Dir
	if dir == "" {
		dir = os.TempDir()
	}

	mediaTypes := make(map[string]struct{}, len(cfg.Attachments.MediaTypes))
	for _, mt := range cfg.Attachments.MediaTypes {
		mediaTypes[mt] = struct{}{}
	}

	return &Store{
		dir:        dir,
		maxCount:   cfg.Attachments.MaxCount,
		maxBytes:   cfg.Attachments.MaxBytes,
		mediaTypes: mediaTypes,
	}
}

// Add wraps one selected file as a pending attachment with a freshly minted
// local location. Limit violations reject the add with a typed error and
// leave the pending set unchanged.
func (s *Store) Add(name, mediaType string, payload io.Reader) (model.Attachment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) >= s.maxCount {
		return model.Attachment{}, fmt.Errorf("cannot add %q: %w", name, model.ErrTooManyAttachments)
	}

	if _, ok := s.mediaTypes[mediaType]; !ok {
		return model.Attachment{}, fmt.Errorf("cannot add %q (%s): %w", name, mediaType, model.ErrUnsupportedMediaType)
	}

	location := filepath.Join(s.dir, uuid.New().String())
	file, err := os.Create(location)
	if err != nil {
		return model.Attachment{}, fmt.Errorf("failed to create attachment file: %v", err)
	}

	// LimitReader caps the copy one byte past the limit so an over-size
	// payload is detectable without reading it to the end.
	size, err := io.Copy(file, io.LimitReader(payload, s.maxBytes+1))
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(location)
		return model.Attachment{}, fmt.Errorf("failed to write attachment payload: %v", err)
	}

	if size > s.maxBytes {
		_ = os.Remove(location)
		return model.Attachment{}, fmt.Errorf("cannot add %q: %w", name, model.ErrAttachmentTooLarge)
	}

	att := model.Attachment{
		Name:      name,
		MediaType: mediaType,
		Location:  location,
		Size:      size,
	}
	s.pending = append(s.pending, att)

	return att, nil
}

// Remove drops one pending attachment by position and deletes its local
// copy. Out-of-range indexes are ignored.
func (s *Store) Remove(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.pending) {
		return
	}

	_ = os.Remove(s.pending[index].Location)
	s.pending = append(s.pending[:index], s.pending[index+1:]...)
}

// Pending returns a snapshot of the attachments waiting for the next send.
func (s *Store) Pending() []model.Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]model.Attachment, len(s.pending))
	copy(snapshot, s.pending)

	return snapshot
}

// Take hands ownership of the pending set to the caller and clears it.
func (s *Store) Take() []model.Attachment {
	s.mu.Lock()
	defer s.mu.Unlock()

	taken := s.pending
	s.pending = nil

	return taken
}

// Release deletes the local copies behind already-taken attachments.
func (s *Store) Release(attachments []model.Attachment) {
	for _, att := range attachments {
		_ = os.Remove(att.Location)
	}
}
