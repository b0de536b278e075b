// Package facade is the single persistence entry point of the client.
//
// A Facade talks to the remote API while it is reachable and to the local
// SQLite store otherwise. The choice is made once by New (a bounded GET
// /users probe) and can change only in one direction: the first failed remote
// call moves the facade to ModeLocal for the rest of its lifetime, and the
// call that failed is completed against the local store. The facade never
// probes again.
//
// Some state is always local regardless of mode: sessions, the admin-login
// flag, user settings and imports.
//
// A Facade is safe for concurrent use.
package facade
