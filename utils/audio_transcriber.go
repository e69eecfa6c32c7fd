package utils

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperTranscriber sends audio files to the OpenAI transcription endpoint
// and asks for a plain-text response.
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

func NewWhisperTranscriber(client *openai.Client, model string) *WhisperTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &WhisperTranscriber{client: client, model: model}
}

// TranscribeAudio uploads audioFile as-is. The API infers the codec from the
// file extension, so the path must keep the original suffix. The text comes
// back exactly as the API sent it.
func (t *WhisperTranscriber) TranscribeAudio(ctx context.Context, audioFile string) (string, error) {
	req := openai.AudioRequest{
		Model:    t.model,
		FilePath: audioFile,
		Format:   openai.AudioResponseFormatText,
	}
	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
