// Package schema declares the structural contract a model response must
// satisfy: the required fields of a review (score, summary, issues,
// optimizedCode) and, per issue, line, issue, and suggestion.
//
// The contract is a single inspectable value returned by [Review]. The
// prompt builder renders it into the instruction text via [PromptBlock],
// the response validator enforces it field by field, and provider
// adapters translate it into their native structured-output formats.
// Changing a field here changes every consumer at once.
package schema
