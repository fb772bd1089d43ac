package moderation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"problem-board-go/internal/config"
)

const chatCompletionsPath = "/v1/chat/completions"

const policyPrompt = `You are a helpful assistant that determines if the given statement is obscene, racist, sexist, or offensive or not (to a huge degree). You will output a YES if it passes the test i.e it is not obscene, racist, sexist, or offensive to anyone. You will output a NO if it can potentially be obscene, racist, sexist, or offensive to anyone. Also output NO to obviously stupid jokes and statements which are just crass insults and are obviously not real problems. Again you need to output only YES or NO.`

// Client implements Gate against the Mistral chat completions API
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new moderation client
func NewClient(cfg *config.ModerationConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
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
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Classify asks the external model whether the text is acceptable.
// Transport and API failures return ErrUnavailable, never an accept.
func (c *Client) Classify(ctx context.Context, text string) (Verdict, error) {
	raw, err := c.callAPI(ctx, text)
	if err != nil {
		logrus.Errorf("Moderation call failed: %v", err)
		return Reject, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	verdict := parseVerdict(raw)
	logrus.WithFields(logrus.Fields{
		"response": raw,
		"verdict":  verdict.String(),
	}).Info("Moderation response received")
	return verdict, nil
}

func (c *Client) callAPI(ctx context.Context, text string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: policyPrompt},
			{Role: "user", Content: text},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("api error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response")
	}

	return chatResp.Choices[0].Message.Content, nil
}
