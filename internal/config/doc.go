// Package config loads and merges configuration for the quest-keeper
// binaries.
//
// Sources are merged first-wins: environment variables, then command-line
// flags, then an optional JSON file referenced by either of the first two.
// A later source only fills fields the earlier sources left zero.
//
// [GetStructuredConfig] builds the server configuration and
// [GetClientConfig] the client one.
package config
