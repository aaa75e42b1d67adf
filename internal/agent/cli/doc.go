// Package cli implements the interactive terminal for customs agents.
//
// The REPL wires user commands to the validation and auth services: capture
// decisions on bordereaux (always permitted, online or offline), review the
// pending buffer and conflicts, and trigger the batch sync when connectivity
// is back. A background watcher flips the terminal between online and offline
// mode; only the sync command is gated by it.
package cli
