// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Server configuration is assembled from multiple sources in the following
// priority order (earlier sources win for non-zero fields):
//  1. .env file exported into the environment (existing variables are kept)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//  5. Defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
