// Package config provides configuration loading, merging, and validation
// facilities for the Thoughts client.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets a non-zero value wins:
//  1. Environment variables (a .env file is loaded first without
//     overriding variables that are already set)
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
