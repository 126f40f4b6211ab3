// Package commands defines the agentkey CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init        Create the host key pair, or load it if it already exists
//   - show        Print the key file path, fingerprint and key size
//   - public-key  Write the public key as PEM to stdout
//   - delete      Remove the key file
//
// # Configuration
//
// Settings come from flags, AGENTKEY_* environment variables or a config
// file passed with --config, in that order of precedence. The root command
// resolves the key file path and builds the dependency graph (store,
// protector, key manager) before any subcommand runs.
package commands
