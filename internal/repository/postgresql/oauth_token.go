package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/nzdigital/capdev-backend-go/internal/domain/integration"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/database"
)

type oauthTokenRepositoryImpl struct {
	db *database.DB
}

func NewOAuthTokenRepository(db *database.DB) integration.OAuthTokenRepository {
	return &oauthTokenRepositoryImpl{db: db}
}

func (r *oauthTokenRepositoryImpl) Upsert(ctx context.Context, token integration.OAuthToken) (integration.OAuthToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO oauth_tokens (id, provider, access_token, refresh_token, token_type, expiry, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (provider) DO UPDATE
		SET access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_type = EXCLUDED.token_type,
			expiry = EXCLUDED.expiry,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		token.Provider, token.AccessToken, token.RefreshToken, token.TokenType, token.Expiry,
	).Scan(&token.ID, &token.CreatedAt, &token.UpdatedAt)
	if err != nil {
		return integration.OAuthToken{}, err
	}

	return token, nil
}

func (r *oauthTokenRepositoryImpl) GetByProvider(ctx context.Context, provider string) (integration.OAuthToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, provider, access_token, refresh_token, token_type, expiry, created_at, updated_at
		FROM oauth_tokens
		WHERE provider = $1
	`

	var token integration.OAuthToken
	err := q.QueryRow(ctx, query, provider).Scan(
		&token.ID, &token.Provider, &token.AccessToken, &token.RefreshToken,
		&token.TokenType, &token.Expiry, &token.CreatedAt, &token.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return integration.OAuthToken{}, integration.ErrTokenNotFound
		}
		return integration.OAuthToken{}, err
	}

	return token, nil
}

func (r *oauthTokenRepositoryImpl) DeleteByProvider(ctx context.Context, provider string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM oauth_tokens WHERE provider = $1`, provider)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return integration.ErrTokenNotFound
	}
	return nil
}
