package utils

import openai "github.com/sashabaranov/go-openai"

// NewOpenAIClient returns a client for the OpenAI API, or for any compatible
// endpoint when baseURL is set.
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
