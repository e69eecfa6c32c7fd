package utils

import (
	"errors"
	"fmt"
)

// The messages of these errors are returned to HTTP clients verbatim.
var (
	ErrUnsupportedFormat = errors.New("Unsupported file format")
	ErrEmptyTranscript   = errors.New("Empty transcript")
	ErrMissingFile       = errors.New("Missing file")
)

// TranscriptionError is fatal to an upload: the request fails with it.
type TranscriptionError struct {
	Err error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription_failed: %v", e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// summaryFailure renders a recovered summarization error for the response body.
func summaryFailure(err error) string {
	return fmt.Sprintf("summary_failed: %v", err)
}
