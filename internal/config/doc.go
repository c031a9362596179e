// Package config loads, normalizes, and validates discsub configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours REDUMP_USERNAME/REDUMP_PASSWORD
// environment fallbacks so credentials never have to live in the file.
package config
