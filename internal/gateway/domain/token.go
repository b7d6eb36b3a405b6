package domain

import "time"

// TokenPair represents what the token issuance flows produce: the
// short-lived access token and the long-lived refresh token, both HS256
// JWTs. The wire shape lives in tollsdk; handlers convert ExpiresIn to
// whole seconds there.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string // always "Bearer"
	ExpiresIn    time.Duration
}
