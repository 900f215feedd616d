package pipeline

import (
	"errors"
	"fmt"

	"github.com/abhisek/kidlingo/internal/store"
)

var (
	// ErrTranscriptTooShort is returned when the transcript has fewer
	// characters than the configured minimum. The model is never called.
	ErrTranscriptTooShort = errors.New("transcript too short")

	// ErrMediaMissing is returned when the video file is no longer on disk.
	ErrMediaMissing = errors.New("video file not found")
)

// Error is returned by every failed pipeline run. The media row has already
// been marked as failed when it is returned.
type Error struct {
	MediaID int
	Stage   store.Stage
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("media %d failed during %s: %v", e.MediaID, e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
