// Package config provides configuration loading, merging, and validation
// facilities for the session client, its CLI, and the backend stub.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// The main entry points are [GetClientConfig] for the client library and CLI,
// and [GetStubConfig] for the in-memory backend stub.
package config
