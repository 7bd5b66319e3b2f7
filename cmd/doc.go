// Package cmd implements the command-line interface of the vision controller
// client. It provides commands to query and control a vision controller and a
// mock controller for local development.
//
// The package is organized into several subpackages:
//
//   - vision: Client commands (ping, state, task-state, stop-task, call, bench, ...)
//   - mock: Starts the mock vision controller
//   - util: Shared utilities for command-line processing and configuration (internal use)
//   - vccgen: Generator of the typed command facade of the client (go generate)
//
// Every flag can also be set as environment variable VCC_<FLAG> or in a .env file.
// See vcc -help for a list of all commands.
package cmd
