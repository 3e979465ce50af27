// Package cli provides the interactive FinanzApp command-line client.
//
// It wires configuration, the local store, and the domain services into an
// interactive REPL. Typical flow: restore the persisted session if one is
// still valid, then execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout / password change
//   - Record income and expense movements
//   - Savings goals with accumulating deposits
//   - Payment reminders
//   - Dashboard aggregates and the tip of the day
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
