// Package app wires application dependencies for the CLI.
//
// It builds the key file store, the machine-scoped protector and the key
// lifecycle service from Config, exposing them via the Wire struct for
// commands to use.
package app
