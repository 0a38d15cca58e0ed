// Package cli wires together the Cobra command tree for the reviewassist
// binary.
//
// It defines the root command and all subcommands (analyze, languages,
// models, config, version), binds flags, reads configuration, drives the
// review controller, and returns deterministic exit codes for CI gating.
package cli
