package utils

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	summaryTemperature = 0.4
	summaryMaxTokens   = 300

	summarySystemPrompt = "Summarize user audio."
	summaryUserPrompt   = "You are an assistant that summarizes spoken content. Provide: 1) A concise summary (<=60 words). " +
		"2) 3 key bullet insights.\n\nTranscript:\n"
)

// ChatSummarizer summarizes transcripts with a chat-completion model.
type ChatSummarizer struct {
	client         *openai.Client
	model          string
	detectLanguage func(text string) (string, bool)
}

func NewChatSummarizer(client *openai.Client, model string) *ChatSummarizer {
	return &ChatSummarizer{
		client:         client,
		model:          model,
		detectLanguage: DetectLanguage,
	}
}

func (s *ChatSummarizer) SummarizeText(ctx context.Context, transcript string) (string, error) {
	language, _ := s.detectLanguage(transcript)

	req := openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    summaryMessages(transcript, language),
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("error creating chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// summaryMessages builds the fixed prompt. An empty language leaves the reply
// language up to the model.
func summaryMessages(transcript, language string) []openai.ChatCompletionMessage {
	system := summarySystemPrompt
	if language != "" {
		system = fmt.Sprintf("%s Respond in %s.", summarySystemPrompt, language)
	}
	return []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: summaryUserPrompt + transcript,
		},
	}
}
