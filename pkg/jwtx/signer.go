package jwtx

// Signer is our interface for anything that can sign token claims into a
// compact JWT string.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// NewSignerHS256 creates an HS256 (HMAC-SHA256) signer from a shared
// secret. The secret is borrowed for the lifetime of the signer only;
// callers construct a fresh signer per operation when the secret comes
// from an external provider.
func NewSignerHS256(secret []byte) (Signer, error) {
	return newHS256Signer(secret)
}
