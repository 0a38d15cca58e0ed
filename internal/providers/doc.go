// Package providers implements the Client interface for each supported
// LLM provider.
//
// Supported providers: Google (Gemini, via the official genai SDK),
// Anthropic (Claude), OpenAI (GPT), and Ollama / LM Studio for local
// models.
//
// Every implementation performs exactly one request per call — no
// implicit retries, no streaming — and surfaces failure as a single
// error, never a partial result. Where a provider supports structured
// output natively (Gemini response schemas, the OpenAI-compatible
// response_format field) the review contract from internal/schema is
// translated into that provider's wire format; the returned payload is
// still untrusted text that callers must validate.
//
// Use [New] to obtain a Client by provider name and model string.
package providers
