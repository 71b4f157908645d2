// Package cli defines the Cobra command tree for the robot-models CLI. Each
// file in this package registers one top-level command (list, path, show,
// env, etc.) with the root command. Command implementations delegate to the
// models package and internal packages for the lookup logic and only handle
// flag parsing and output formatting.
package cli
