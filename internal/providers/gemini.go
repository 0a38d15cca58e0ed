package providers

import (
	"context"
	"fmt"
	"os"

	genai "google.golang.org/genai"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/schema"
)

// Gemini implements the Client interface on the official genai SDK.
type Gemini struct {
	cli   *genai.Client
	model string
}

// NewGemini creates a new Gemini client.
func NewGemini(ctx context.Context, model string) (*Gemini, error) {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		key = os.Getenv("GOOGLE_API_KEY")
	}
	if key == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY (or GOOGLE_API_KEY) environment variable is not set")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Gemini{cli: cli, model: model}, nil
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Generate(ctx context.Context, req Request) (Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens:  int32(maxTokens),
		ResponseMIMEType: "application/json",
	}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}
	if req.Schema != nil {
		cfg.ResponseSchema = geminiSchema(req.Schema)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{
			{Role: "user", Parts: []*genai.Part{{Text: req.UserPrompt}}},
		},
		cfg,
	)
	if err != nil {
		return Response{}, fmt.Errorf("gemini request: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Response{}, fmt.Errorf("no content in response")
	}

	var content string
	for _, part := range resp.Candidates[0].Content.Parts {
		content += part.Text
	}

	out := Response{Content: content}
	if resp.UsageMetadata != nil {
		out.TokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}
	return out, nil
}

// geminiSchema translates the neutral contract into the SDK schema type.
func geminiSchema(o *schema.Object) *genai.Schema {
	props := make(map[string]*genai.Schema, len(o.Properties))
	required := make([]string, 0, len(o.Properties))
	for _, p := range o.Properties {
		props[p.Name] = geminiProperty(p)
		required = append(required, p.Name)
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   required,
	}
}

func geminiProperty(p schema.Property) *genai.Schema {
	switch p.Kind {
	case schema.KindInteger:
		return &genai.Schema{
			Type:        genai.TypeInteger,
			Description: p.Description,
			Minimum:     p.Minimum,
			Maximum:     p.Maximum,
		}
	case schema.KindArray:
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: p.Description,
			Items:       geminiSchema(p.Items),
		}
	default:
		return &genai.Schema{
			Type:        genai.TypeString,
			Description: p.Description,
		}
	}
}
