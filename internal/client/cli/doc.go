// Package cli provides the interactive coachdesk command-line client.
//
// It wires configuration, the local SQLite store, the optional remote API
// and an interactive REPL. On start the storage facade probes the remote;
// when it is unreachable, or fails later, the client keeps working against
// the local store.
//
// Key features:
//   - Register / Login / Logout with a session kept in the local store
//   - Course enrollment and the user's profile
//   - Admin dashboard: statistics, user and enrollment lists
//   - Export, import and clear of the whole dataset
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
