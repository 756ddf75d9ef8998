package auth

import "crypto/subtle"

// Gate validates a submitted credential against the single configured admin
// secret. It is stateless and synchronous: no lockout, no rate limiting, no
// per-credential identity — a shared-password gate, not an authentication
// system. The secret is injected at construction rather than read from
// global state.
type Gate struct {
	secret []byte
}

// NewGate constructs a Gate for the configured shared secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Authorize reports whether the supplied credential matches the configured
// secret. It never returns an error; callers translate false into an
// unauthorized response.
func (g *Gate) Authorize(supplied string) bool {
	return subtle.ConstantTimeCompare(g.secret, []byte(supplied)) == 1
}
