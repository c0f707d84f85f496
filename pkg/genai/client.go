package genai

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/googleai/vertex"
)

// DefaultModel is the pinned Gemini version used for lab report extraction.
const DefaultModel = "gemini-2.5-flash-preview-05-20"

// Extractor extracts genomic information from a PDF lab report.
type Extractor interface {
	Extract(ctx context.Context, pdf []byte) (string, error)
}

// ClientConfig represents the configuration for the GenAI client.
type ClientConfig struct {
	Project     string
	Location    string
	Model       string
	MaxTokens   int
	Temperature float64
	TopP        float64
	Seed        int
}

// Client calls Gemini on Vertex AI with a PDF document and the
// extraction prompt. It implements Extractor.
type Client struct {
	config ClientConfig
}

// NewWithConfig creates a new Client with the given configuration.
func NewWithConfig(config ClientConfig) (*Client, error) {
	// Validate and set default values for config fields if necessary
	if config.Project == "" {
		return nil, fmt.Errorf("project is required")
	}
	if config.Location == "" {
		config.Location = "global"
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.MaxTokens < 0 {
		return nil, fmt.Errorf("max tokens cannot be negative")
	} else if config.MaxTokens == 0 {
		config.MaxTokens = 65535
	}
	if config.Temperature < 0 || config.Temperature > 2 {
		return nil, fmt.Errorf("temperature must be between 0 and 2")
	} else if config.Temperature == 0 {
		config.Temperature = 1
	}
	if config.TopP == 0 {
		config.TopP = 1
	}

	return &Client{
		config: config,
	}, nil
}

// Config returns the effective configuration after defaults were applied.
func (c *Client) Config() ClientConfig {
	return c.config
}

// Extract sends the PDF bytes plus the extraction prompt to the model and
// returns the plain-text answer. The Vertex client is constructed per call;
// a construction failure surfaces as the call's error. An empty model
// answer is returned as ("", nil) so the caller decides how to report it.
func (c *Client) Extract(ctx context.Context, pdf []byte) (string, error) {
	llm, err := vertex.New(ctx,
		googleai.WithCloudProject(c.config.Project),
		googleai.WithCloudLocation(c.config.Location),
		googleai.WithDefaultModel(c.config.Model),
		// Clinical terminology trips the default safety filters, so all
		// four harm categories are unblocked.
		googleai.WithHarmThreshold(googleai.HarmBlockNone),
	)
	if err != nil {
		return "", fmt.Errorf("failed to initialize GenAI client: %w", err)
	}

	// One human turn, document first, then the instructions.
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.BinaryPart("application/pdf", pdf),
				llms.TextPart(extractionPrompt),
			},
		},
	}

	resp, err := llm.GenerateContent(ctx, content,
		llms.WithModel(c.config.Model),
		llms.WithTemperature(c.config.Temperature),
		llms.WithTopP(c.config.TopP),
		llms.WithSeed(c.config.Seed),
		llms.WithMaxTokens(c.config.MaxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Content, nil
}
