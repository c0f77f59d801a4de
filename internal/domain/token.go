package domain

import "time"

// TokenIssuer issues short-lived tokens the portal presents to the tutor API.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}
