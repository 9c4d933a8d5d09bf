package models

import "time"

// Session is the locally persisted authentication state of the client: the
// bearer token plus a snapshot of the signed-in user good enough to render
// the interface before the first server round-trip.
type Session struct {
	Token   string    `json:"token"`
	User    User      `json:"user"`
	SavedAt time.Time `json:"savedAt"`
}

// Active reports whether the session carries a token.
func (s Session) Active() bool {
	return s.Token != ""
}
