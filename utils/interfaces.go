package utils

import "context"

// AudioTranscriber turns an audio file on disk into text.
type AudioTranscriber interface {
	TranscribeAudio(ctx context.Context, audioFile string) (string, error)
}

// TextSummarizer produces a short digest of a transcript.
type TextSummarizer interface {
	SummarizeText(ctx context.Context, transcript string) (string, error)
}
