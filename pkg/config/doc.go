// Package config loads the read-only ticketlink configuration.
//
// Configuration is layered with koanf, later layers winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. a user file: the --config path, or config.toml / config.yaml in
//     $XDG_CONFIG_HOME/ticketlink when present
//  3. TICKETLINK_* environment variables
//
// The merged document is checked against an embedded JSON schema before it
// is decoded into Config. Nothing in this package writes configuration.
package config
