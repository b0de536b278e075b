// Package client contains the client-side building blocks the persistence
// facade sits on.
//
// # Overview
//
// The package provides:
//  1. The remote API contract (see the Client interface): registration,
//     login, user and enrollment reads, enrollment submission, admin login,
//     export and clear.
//  2. A JSON-over-HTTP implementation (see HTTPClient) that bounds every call
//     with a timeout (DefaultTimeout unless configured) and maps failures to
//     sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens the
//     SQLite file and applies the embedded goose migrations.
//
// # Error Handling
//
// Transport failures, timeouts and undecodable bodies match ErrUnavailable.
// A non-2xx answer is an *HTTPError carrying the status and the server's text
// (or "HTTP <code>"); it also matches ErrUnavailable, and in addition
// ErrNotFound for 404 and common.ErrDuplicateEmail for 409.
//
// See Also
//
//   - Interface:  Client
//   - HTTP impl:  HTTPClient
//   - DB helpers: InitDatabase, RunMigrations
//   - Errors:     ErrUnavailable, ErrNotFound, HTTPError
package client
