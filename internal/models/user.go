// Package models holds the records shared by the client facade and the
// reference server, in the JSON shape the remote API and the export files use.
package models

import "time"

// User is a registered account. Email is the unique key.
type User struct {
	ID            ID         `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Password      string     `json:"password,omitempty"`
	CompactMobile string     `json:"compact_mobile"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLogin     *time.Time `json:"last_login"`
	LoginCount    int        `json:"login_count"`
}

// NewUser is the input of a registration. Password is already hashed.
type NewUser struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	CompactMobile string `json:"mobile"`
}

// Enrollment is a course application. It never changes once stored.
type Enrollment struct {
	ID            ID        `json:"id"`
	FullName      string    `json:"fullName"`
	Email         string    `json:"email"`
	Mobile        string    `json:"mobile"`
	CompactMobile string    `json:"compact_mobile"`
	Course        string    `json:"course"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewEnrollment is the input of an enrollment submission.
type NewEnrollment struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Course   string `json:"course"`
}

// Admin is an administrator as listed in exports; credentials never leave
// the store.
type Admin struct {
	Email string `json:"email"`
}
