package utils

import "context"

type MockAudioTranscriber struct {
	TranscribeAudioFunc func(ctx context.Context, audioFile string) (string, error)
}

func (m *MockAudioTranscriber) TranscribeAudio(ctx context.Context, audioFile string) (string, error) {
	return m.TranscribeAudioFunc(ctx, audioFile)
}

type MockTextSummarizer struct {
	SummarizeTextFunc func(ctx context.Context, transcript string) (string, error)
}

func (m *MockTextSummarizer) SummarizeText(ctx context.Context, transcript string) (string, error) {
	return m.SummarizeTextFunc(ctx, transcript)
}
