package models

import "time"

// DefaultSessionTTL is how long a session stays valid after creation.
const DefaultSessionTTL = 24 * time.Hour

// Session is a time-bounded proof of login. There is no revocation list:
// a session is valid exactly while now is before ExpiresAt.
type Session struct {
	ID        ID        `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewSession starts a session for email at now lasting ttl.
func NewSession(email string, now time.Time, ttl time.Duration) Session {
	return Session{
		ID:        NewID(),
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// ValidAt reports whether the session is still valid at t.
func (s Session) ValidAt(t time.Time) bool {
	return t.Before(s.ExpiresAt)
}
