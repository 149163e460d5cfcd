package categorizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fjacquet/autokit/internal/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// AIClient suggests a category name for a file from a list of known categories.
type AIClient interface {
	SuggestCategory(ctx context.Context, file File, categories []string) (string, error)
}

// GeminiClient implements the AIClient interface using the Google Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

// NewGeminiClient creates a Gemini-backed AI client. The API key is read
// from the configuration (bound to GEMINI_API_KEY).
func NewGeminiClient(cfg *config.Config) (*GeminiClient, error) {
	apiKey := cfg.AI.APIKey
	if apiKey == "" {
		apiKey = config.GetGeminiAPIKey()
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   client.GenerativeModel(cfg.AI.Model),
		timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
	}, nil
}

// SuggestCategory asks the model to pick exactly one of the known category
// names for the given file.
func (c *GeminiClient) SuggestCategory(ctx context.Context, file File, categories []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := fmt.Sprintf(`Categorize the following file by its name and extension:
File name: %s
Extension: %s

Please assign this file to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]`,
		file.Name,
		file.Extension,
		strings.Join(categories, ", "))

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	responseText := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return extractCategoryFromResponse(responseText), nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// extractCategoryFromResponse parses the model response to extract the category name
func extractCategoryFromResponse(response string) string {
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Category:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "Category:"))
		}
	}
	return strings.TrimSpace(response)
}
