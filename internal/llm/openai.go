package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// openAI speaks the chat-completions wire format shared by OpenAI,
// Mistral, Groq and Deepseek; only the base URL differs per provider.
type openAI struct {
	apiKey  string
	baseURL string
	model   string
	hc      *http.Client
}

func newOpenAICompatible(apiKey, baseURL, model string) LLM {
	return &openAI{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		hc:      &http.Client{Timeout: 120 * time.Second},
	}
}

type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []chatCompletionMessage `json:"messages"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (o *openAI) Chat(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	payload := chatCompletionRequest{Model: o.model}

	if systemPrompt != "" {
		payload.Messages = append(payload.Messages, chatCompletionMessage{Role: "system", Content: systemPrompt})
	}
	for _, msg := range messages {
		payload.Messages = append(payload.Messages, chatCompletionMessage{Role: msg.Role, Content: msg.Content})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, raw)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("api error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty completion from model")
	}

	return completion.Choices[0].Message.Content, nil
}
