// Package config loads and merges reviewassist configuration from
// multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (REVIEWASSIST_PROVIDER, REVIEWASSIST_MODEL, etc.)
//  3. A .env file in the working directory (loaded via godotenv)
//  4. Config file ($XDG_CONFIG_HOME/reviewassist/config.json)
//  5. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write the config
// file, and [SetField] to update a single key.
package config
