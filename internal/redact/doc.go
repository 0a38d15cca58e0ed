// Package redact masks secret-looking values in a code snippet before
// it is submitted for review.
//
// Masking is opt-in at the CLI layer and happens before the snippet
// reaches the analysis core, so the core still forwards exactly the
// code it was given. Every pattern matches within a single line and is
// replaced by a single-line placeholder, so masking never changes the
// snippet's line count and reviewer line numbers stay valid.
package redact
