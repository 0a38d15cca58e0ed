// Reviewassist is a CLI for reviewing code snippets with LLM providers.
//
// It sends a single snippet to a provider under a strict JSON response
// contract and renders the structured review: a 0-100 quality score,
// line-level issues with suggestions, an optimized rewrite, and a summary.
// Exit codes are deterministic and suitable for CI gating.
//
// Usage:
//
//	reviewassist analyze solution.rs            # review a file
//	reviewassist analyze --code 'let x = 1'     # review an inline snippet
//	cat main.go | reviewassist analyze          # review stdin
//	reviewassist languages                      # list supported languages
//	reviewassist models list                    # list known providers/models
package main
