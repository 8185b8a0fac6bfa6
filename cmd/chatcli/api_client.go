package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/2beens/fitlog/internal/chat"
	"github.com/2beens/fitlog/internal/workouts"
)

// apiClient talks to a running fitlog backend over HTTP.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newApiClient(baseURL string, httpClient *http.Client) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// StreamMessage posts a chat message and relays the plain text response
// body chunk by chunk as it arrives.
func (c *apiClient) StreamMessage(
	ctx context.Context,
	message string,
	history []chat.Message,
	onDelta func(string),
) (string, error) {
	reqBody, err := json.Marshal(chat.ChatRequest{
		Message: message,
		History: history,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat", bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "FitLog/1 CLI")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("chat API returned %d: %s", resp.StatusCode, respBody)
	}

	var fullResponse strings.Builder
	buf := make([]byte, 512)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			chunk := string(buf[:n])
			fullResponse.WriteString(chunk)
			onDelta(chunk)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fullResponse.String(), fmt.Errorf("read chat response: %w", readErr)
		}
	}

	return fullResponse.String(), nil
}

// ExtractSuggestions asks the backend to parse suggestion blocks out of
// coach response text.
func (c *apiClient) ExtractSuggestions(ctx context.Context, text string) ([]chat.Suggestion, error) {
	reqBody, err := json.Marshal(chat.SuggestionsRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal suggestions request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/suggestions", bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "FitLog/1 CLI")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggestions request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read suggestions response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestions API returned %d: %s", resp.StatusCode, respBody)
	}

	var suggestionsResp chat.SuggestionsResponse
	if err := json.Unmarshal(respBody, &suggestionsResp); err != nil {
		return nil, fmt.Errorf("unmarshal suggestions response: %w", err)
	}

	return suggestionsResp.Suggestions, nil
}

// CreateWorkout logs a workout through the backend.
func (c *apiClient) CreateWorkout(ctx context.Context, workout workouts.Workout) (workouts.Workout, error) {
	reqBody, err := json.Marshal(workout)
	if err != nil {
		return workouts.Workout{}, fmt.Errorf("marshal workout: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/workouts", bytes.NewReader(reqBody))
	if err != nil {
		return workouts.Workout{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "FitLog/1 CLI")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return workouts.Workout{}, fmt.Errorf("add workout request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return workouts.Workout{}, fmt.Errorf("read add workout response: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return workouts.Workout{}, fmt.Errorf("add workout API returned %d: %s", resp.StatusCode, respBody)
	}

	var added workouts.Workout
	if err := json.Unmarshal(respBody, &added); err != nil {
		return workouts.Workout{}, fmt.Errorf("unmarshal added workout: %w", err)
	}

	return added, nil
}
