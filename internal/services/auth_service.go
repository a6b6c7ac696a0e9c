package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"caderneta-backend/internal/auth"
	"caderneta-backend/internal/models"
	"caderneta-backend/internal/repositories"
	"caderneta-backend/internal/session"

	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password must have at least 6 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
)

type AuthService struct {
	Users   *repositories.UserRepository
	Revoked *repositories.RevokedTokenRepository
	JWT     *auth.JWTManager
	Broker  *session.Broker
}

func NewAuthService(users *repositories.UserRepository, revoked *repositories.RevokedTokenRepository, jwtManager *auth.JWTManager, broker *session.Broker) *AuthService {
	return &AuthService{
		Users:   users,
		Revoked: revoked,
		JWT:     jwtManager,
		Broker:  broker,
	}
}

// SignUp creates an account and signs it in.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") || len(email) < 3 {
		return nil, ErrInvalidEmail
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.Users.Create(ctx, email, hash)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueToken(user)
}

// SignIn authenticates a credential pair and issues a token.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// SignOut revokes the session token and announces the change.
func (s *AuthService) SignOut(ctx context.Context, claims *auth.Claims) error {
	if err := s.Revoked.Revoke(ctx, claims.ID, claims.Subject, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	// Opportunistic cleanup; a failure here is not the caller's problem.
	if err := s.Revoked.PurgeExpired(ctx); err != nil {
		log.Printf("auth: purge expired revocations: %v", err)
	}

	s.Broker.Publish(session.Event{Type: session.SignedOut, UserID: claims.Subject, Email: claims.Email})
	return nil
}

// IsRevoked reports whether a token ID has been signed out.
func (s *AuthService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.Revoked.IsRevoked(ctx, jti)
}

func (s *AuthService) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, claims, err := s.JWT.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	s.Broker.Publish(session.Event{Type: session.SignedIn, UserID: user.ID, Email: user.Email})

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
