package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ashabari/Majumdar-WorldRecipes/internal/recipe"
)

// Client is a client for the Gemini API.
type Client struct {
	model *genai.GenerativeModel
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{model: client.GenerativeModel("gemini-1.5-flash")}, nil
}

// RecipeNotes asks Gemini for short serving and pairing notes on a
// generated recipe.
func (c *Client) RecipeNotes(ctx context.Context, v recipe.View) (string, error) {
	promptText := fmt.Sprintf(
		"Here is a %s recipe called %q made with %s. In three short sentences of plain text, suggest how to serve it, one side dish, and one drink pairing. No markdown formatting.",
		v.Diet, v.Title, strings.Join(v.Ingredients, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(promptText))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}

	return strings.TrimSpace(string(text)), nil
}
