package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/Sushil2209/AI--Powered-code-review-Assistant/internal/schema"
)

const defaultOpenAIURL = "https://api.openai.com/v1/chat/completions"

// OpenAI implements the Client interface for OpenAI's API. The response
// contract is enforced server-side via response_format json_schema.
type OpenAI struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenAI creates a new OpenAI client.
func NewOpenAI(model string) (*OpenAI, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}
	return &OpenAI{
		apiKey:  key,
		model:   model,
		baseURL: defaultOpenAIURL,
		client:  &http.Client{Timeout: 120 * time.Second},
	}, nil
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Generate(ctx context.Context, req Request) (Response, error) {
	body := chatRequest(o.model, req)

	payload, err := json.Marshal(body)
	if err != nil {
		return Response{}, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.baseURL, bytes.NewReader(payload))
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	return doChat(o.client, httpReq)
}

// chatRequest builds an OpenAI-compatible chat completion request; it is
// shared with the Ollama client.
func chatRequest(model string, req Request) openaiRequest {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	body := openaiRequest{
		Model: model,
		Messages: []openaiMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens: maxTokens,
	}
	if req.Temperature > 0 {
		body.Temperature = &req.Temperature
	}
	if req.Schema != nil {
		body.ResponseFormat = &openaiResponseFormat{
			Type: "json_schema",
			JSONSchema: &openaiJSONSchema{
				Name:   req.Schema.Name,
				Strict: true,
				Schema: contractJSONSchema(req.Schema),
			},
		}
	}
	return body
}

// doChat executes an OpenAI-compatible chat request and extracts the
// first choice.
func doChat(client *http.Client, httpReq *http.Request) (Response, error) {
	httpResp, err := client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("sending request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode == 401 || httpResp.StatusCode == 403 {
		return Response{}, &authError{message: string(respBody)}
	}
	if httpResp.StatusCode >= 500 {
		return Response{}, &serverError{statusCode: httpResp.StatusCode, body: string(respBody)}
	}
	if httpResp.StatusCode != 200 {
		return Response{}, fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
	}

	var result openaiResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Response{}, fmt.Errorf("parsing response: %w", err)
	}

	if len(result.Choices) == 0 {
		return Response{}, fmt.Errorf("no choices in response")
	}
	if result.Choices[0].Message.Content == "" {
		return Response{}, fmt.Errorf("empty text content in API response")
	}

	return Response{
		Content:    result.Choices[0].Message.Content,
		TokensUsed: result.Usage.TotalTokens,
	}, nil
}

// contractJSONSchema translates the neutral contract into a JSON Schema
// document for response_format enforcement.
func contractJSONSchema(o *schema.Object) map[string]any {
	props := make(map[string]any, len(o.Properties))
	required := make([]string, 0, len(o.Properties))
	for _, p := range o.Properties {
		props[p.Name] = jsonSchemaProperty(p)
		required = append(required, p.Name)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func jsonSchemaProperty(p schema.Property) map[string]any {
	out := map[string]any{"description": p.Description}
	switch p.Kind {
	case schema.KindInteger:
		out["type"] = "integer"
		if p.Minimum != nil {
			out["minimum"] = *p.Minimum
		}
		if p.Maximum != nil {
			out["maximum"] = *p.Maximum
		}
	case schema.KindArray:
		out["type"] = "array"
		out["items"] = contractJSONSchema(p.Items)
	default:
		out["type"] = "string"
	}
	return out
}

type openaiRequest struct {
	Model          string                `json:"model"`
	Messages       []openaiMessage       `json:"messages"`
	MaxTokens      int                   `json:"max_tokens,omitempty"`
	Temperature    *float64              `json:"temperature,omitempty"`
	ResponseFormat *openaiResponseFormat `json:"response_format,omitempty"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *openaiJSONSchema `json:"json_schema,omitempty"`
}

type openaiJSONSchema struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

type openaiResponse struct {
	Choices []openaiChoice `json:"choices"`
	Usage   openaiUsage    `json:"usage"`
}

type openaiChoice struct {
	Message openaiMessage `json:"message"`
}

type openaiUsage struct {
	TotalTokens int `json:"total_tokens"`
}
