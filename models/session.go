package models

import "time"

// Session is the client-side record of a successful login. It is persisted
// locally so that subsequent CLI invocations stay authenticated.
type Session struct {
	Token    string    `json:"token"`
	User     User      `json:"user"`
	LoggedAt time.Time `json:"logged_at"`
}
