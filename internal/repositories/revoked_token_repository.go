package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RevokedTokenRepository tracks JWT IDs invalidated by sign-out.
type RevokedTokenRepository struct {
	DB *pgxpool.Pool
}

func NewRevokedTokenRepository(db *pgxpool.Pool) *RevokedTokenRepository {
	return &RevokedTokenRepository{DB: db}
}

// Revoke records a token ID until its natural expiry.
func (r *RevokedTokenRepository) Revoke(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO revoked_tokens(jti, user_id, expires_at)
		 VALUES($1, $2, $3)
		 ON CONFLICT (jti) DO NOTHING`,
		jti, userID, expiresAt,
	)
	return err
}

// IsRevoked reports whether a token ID has been signed out.
func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE jti = $1)`,
		jti,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// PurgeExpired drops revocation rows whose tokens have expired anyway.
func (r *RevokedTokenRepository) PurgeExpired(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM revoked_tokens WHERE expires_at < now()`)
	return err
}
