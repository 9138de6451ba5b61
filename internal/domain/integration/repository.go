package integration

import "context"

// OAuthTokenRepository - interface for oauth_tokens table
type OAuthTokenRepository interface {
	Upsert(ctx context.Context, token OAuthToken) (OAuthToken, error)
	GetByProvider(ctx context.Context, provider string) (OAuthToken, error)
	DeleteByProvider(ctx context.Context, provider string) error
}
