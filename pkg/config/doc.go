// Package config handles configuration management for check-commits.
// It layers embedded TOML defaults, user and project TOML files, an explicit
// config file and CHECK_COMMITS_* environment variables.
package config
