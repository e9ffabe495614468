// Package config loads, normalizes, and validates mediaorg configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours MEDIAORG_SOURCE / MEDIAORG_DESTINATION environment
// fallbacks. Command-line flags are layered on top by the CLI; source and
// destination may legitimately stay empty here because the CLI prompts for
// them interactively.
package config
