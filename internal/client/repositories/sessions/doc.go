// Package sessions stores login sessions in the local SQLite database.
//
// A session is valid while the current time is before its ExpiresAt; the
// repository keeps expired rows and leaves the validity check to callers
// (see models.Session.ValidAt). Logout deletes every session of an email.
package sessions
