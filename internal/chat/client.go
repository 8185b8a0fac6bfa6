package chat

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultOpenAIBaseURL points to the hosted chat completions API.
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"

	// maxCompletionTokens is the fixed token ceiling for coach responses.
	maxCompletionTokens = 1024
)

// Message is one turn of a chat completion request, ordered
// system/user/assistant.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to an OpenAI-compatible chat completions endpoint in
// incremental delivery (SSE) mode.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

type completionRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
	Stream    bool      `json:"stream"`
}

type completionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
}

// StreamChat sends the full message list to the model and invokes onDelta
// for every content delta, in arrival order, until the stream completes.
// Returns the assembled full response text.
func (c *Client) StreamChat(
	ctx context.Context,
	messages []Message,
	onDelta func(string),
) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "chat.client.streamchat")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	reqBody, err := json.Marshal(completionRequest{
		Model:     c.model,
		Messages:  messages,
		MaxTokens: maxCompletionTokens,
		Stream:    true,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, "POST",
		c.baseURL+"/chat/completions",
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warnf("close completion response body: %s", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion API returned %d: %s", resp.StatusCode, respBody)
	}

	var fullResponse strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}

		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			break
		}

		var chunk completionChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			log.Tracef("skipping malformed stream chunk: %s", err)
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}

		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			fullResponse.WriteString(delta)
			onDelta(delta)
		}
	}
	if err := scanner.Err(); err != nil {
		return fullResponse.String(), fmt.Errorf("read completion stream: %w", err)
	}

	return fullResponse.String(), nil
}
