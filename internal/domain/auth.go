package domain

import "time"

// Organizer authentication itself lives outside this service; the engine only
// needs to resolve a bearer token into an organizer id for scoping.

// TokenIssuer issues signed tokens (e.g. JWT) for an organizer. Used by
// development tooling and tests; production tokens come from the auth
// collaborator sharing the same secret.
type TokenIssuer interface {
	Issue(organizerID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the organizer id it was issued to.
type TokenVerifier interface {
	Verify(token string) (organizerID string, err error)
}
