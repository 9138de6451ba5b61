package integration

import "time"

// Providers with persisted OAuth credentials.
const ProviderIPayroll = "ipayroll"

// OAuthToken is a stored third-party credential. One row per provider; a
// refresh replaces the row in place so restarts never lose the grant.
type OAuthToken struct {
	ID           string
	Provider     string
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
