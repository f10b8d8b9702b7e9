package session

import "github.com/google/uuid"

// Header is the request header carrying the session token.
const Header = "X-Session-ID"

// New mints an opaque session token. There is no server-side session registry:
// a session exists precisely while it has at least one non-expired staged key.
func New() string {
	return uuid.NewString()
}
