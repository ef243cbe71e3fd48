// Package config loads, normalizes, and validates bookbinder configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// BOOKBINDER_OUTPUT_DIR. Always obtain settings through this package so
// downstream code receives absolute paths, canonical log formats, and clear
// validation errors.
package config
