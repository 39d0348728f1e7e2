package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"soundwave-app/config"
)

// ErrUnavailable wraps every upstream failure: missing credentials, network
// errors, non-2xx responses, empty content, or unparseable JSON. Callers on
// passive render paths absorb it behind a fallback; explicit actions surface it.
var ErrUnavailable = errors.New("AI service unavailable")

const systemPrompt = "You are an assistant for Sabah Soundwave. Always return strict JSON with no markdown fences and no extra text."

var httpClient = &http.Client{Timeout: 30 * time.Second}

type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ChatJSON sends a single-prompt completion request and parses the model's
// reply as a JSON object. The reply is untrusted; callers must clamp every
// field before use.
func ChatJSON(ctx context.Context, prompt string) (map[string]any, error) {
	if config.OPENAI_API_KEY == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is not configured", ErrUnavailable)
	}

	body, err := json.Marshal(chatRequest{
		Model:       config.OPENAI_MODEL,
		Temperature: 0.2,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.OPENAI_BASE_URL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.OPENAI_API_KEY)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("%w: request failed: %s", ErrUnavailable, string(detail))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("%w: AI returned empty content", ErrUnavailable)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("%w: AI returned non-JSON content: %v", ErrUnavailable, err)
	}
	return result, nil
}
