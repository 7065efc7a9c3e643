package auth

import "os"

// Mode selects the session strategy: bearer tokens verified against a
// shared secret, or the local session pointer persisted in the store
// when no remote auth service is wired in.
type Mode string

const (
	ModeToken Mode = "token"
	ModeLocal Mode = "local"
)

// ModeFromEnv reads AUTH_MODE, defaulting to token.
func ModeFromEnv() Mode {
	if os.Getenv("AUTH_MODE") == string(ModeLocal) {
		return ModeLocal
	}
	return ModeToken
}
