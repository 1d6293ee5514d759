package localllm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ashabari/Majumdar-WorldRecipes/internal/recipe"
)

// Client represents a client for a local OpenAI-compatible LLM.
type Client struct {
	httpClient *http.Client
	apiURL     string
}

// NewClient creates a new client for the local LLM.
func NewClient(apiURL string) *Client {
	if apiURL == "" {
		apiURL = "http://localhost:1234/v1/chat/completions"
	}
	return &Client{
		httpClient: &http.Client{},
		apiURL:     apiURL,
	}
}

// Request represents the request body for the local LLM.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Message represents a message in the request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response represents the response from the local LLM.
type Response struct {
	Choices []Choice `json:"choices"`
}

// Choice represents a choice in the response.
type Choice struct {
	Message ResponseMessage `json:"message"`
}

// ResponseMessage represents a message in the response.
type ResponseMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateContent sends a prompt to the local LLM and returns the response.
func (c *Client) GenerateContent(ctx context.Context, text string) (string, error) {
	reqBody := Request{
		Model: "gemma-3-12b-it:2",
		Messages: []Message{
			{
				Role:    "user",
				Content: text,
			},
		},
		Temperature: 1,
		MaxTokens:   1024,
	}

	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(reqBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-OK status code: %d", resp.StatusCode)
	}

	var llmResp Response
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(llmResp.Choices) > 0 {
		return llmResp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("no content found in response")
}

// RecipeNotes asks the local LLM for short serving and pairing notes on
// a generated recipe.
func (c *Client) RecipeNotes(ctx context.Context, v recipe.View) (string, error) {
	prompt := fmt.Sprintf(
		"Here is a %s recipe called %q made with %s. In three short sentences of plain text, suggest how to serve it, one side dish, and one drink pairing. No markdown formatting.",
		v.Diet, v.Title, strings.Join(v.Ingredients, ", "))

	responseText, err := c.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return strings.TrimSpace(responseText), nil
}
