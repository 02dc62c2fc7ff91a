// Package config provides configuration loading, merging, and validation
// facilities for the SOL client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which projects the merged
// [StructuredConfig] into the client view and applies defaults (production
// backend URL, 30s request timeout, 10 MB upload ceiling, credential file
// under the user config directory).
package config
