package model

import "errors"

var (
	ErrTooManyAttachments   = errors.New("attachment count limit exceeded")
	ErrAttachmentTooLarge   = errors.New("attachment size limit exceeded")
	ErrUnsupportedMediaType = errors.New("attachment media type is not allowed")
)

// Attachment is a file accompanying a human turn. Location points at a
// transient local copy of the payload; the payload itself travels to the
// assistant backend at send time and is never stored durably.
type Attachment struct {
	Name      string `json:"name"`
	MediaType string `json:"media_type"`
	Location  string `json:"location"`
	Size      int64  `json:"size"`
}
