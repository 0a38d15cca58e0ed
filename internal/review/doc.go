// Package review contains the core types and orchestrator for LLM-based
// code review of a single submitted snippet.
//
// It defines the supported languages and the fixed extension table used
// for upload-derived language inference, assembles the reviewer prompt
// with the code embedded verbatim in a language-tagged block, parses and
// validates the model's JSON response against the contract in
// internal/schema, and owns the request lifecycle as an explicit state
// machine (Idle, Validating, InFlight, Success, Failed) with at most one
// request in flight per Controller.
//
// Guidelines packs (guidelines.go) allow callers to declare focus areas
// and required checks that are appended to the prompt.
package review
