// Package config loads the application configuration from a YAML file with
// environment-variable overrides.
//
// Configuration is deliberately small: which processor prefix to render
// commands with (e.g. "gm"), how long a tool run may take, and whether debug
// logging is enabled. It is loaded once in main and injected into the
// components that need it; there is no mutable global state.
//
// Precedence, lowest to highest:
//  1. Built-in defaults (Defaults)
//  2. The YAML file passed to Load (a missing file is not an error)
//  3. Environment variables: MAGICK_MCP_CLI_PREFIX,
//     MAGICK_MCP_TIMEOUT_SECONDS, MAGICK_MCP_LOG_LEVEL=debug
package config
