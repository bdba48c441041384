package model

import "errors"

var (
	// ErrBusy rejects a send while another exchange is still in flight.
	// The attempted send is dropped, not queued.
	ErrBusy = errors.New("an exchange is already in flight")

	// ErrEmptySubmission rejects a send with no text and no attachments.
	ErrEmptySubmission = errors.New("nothing to send")

	// ErrNotLatest rejects an edit of any message other than the most
	// recent human one.
	ErrNotLatest = errors.New("you can only edit the most recent message")
)
