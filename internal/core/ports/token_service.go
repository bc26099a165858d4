package ports

import "time"

// TokenService issues and verifies the self-contained bearer tokens that
// stand in for server-side sessions. The clock is passed in explicitly so
// issuance and verification are deterministic.
type TokenService interface {
	Issue(subject string, now time.Time) (string, error)
	Verify(token string, now time.Time) (subject string, err error)
}
