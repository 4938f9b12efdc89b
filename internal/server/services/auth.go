// Package services contains server-side business logic. This file implements
// AuthService, which handles registration and login and issues signed bearer
// tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/peopled/peopled/internal/common"
	"github.com/peopled/peopled/internal/dbx"
	"github.com/peopled/peopled/internal/server/auth"
	"github.com/peopled/peopled/internal/server/config"
	"github.com/peopled/peopled/internal/server/models"
	"github.com/peopled/peopled/internal/server/repositories/repomanager"
)

// dummyHash is a bcrypt hash of a throwaway value. Login verifies against it
// when the email is unknown, so both failure paths pay one bcrypt comparison
// and the two causes stay indistinguishable by timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService provides the two authentication flows:
//   - Register: create an identity record and its credential, mint a token
//   - Login: verify credentials and mint a token
//
// It is the only writer of credential records.
type AuthService struct {
	db            *sql.DB
	repos         repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:            db,
		repos:         m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AccessTokenValidityDuration,
	}
}

// Register hashes the password, then inserts the identity record and its
// credential in one transaction, so a credential failure (including a
// duplicate email) leaves no orphaned identity behind. On success it returns
// a token for the new account.
//
// Password length is enforced at the transport layer; user carries the
// profile fields only.
func (s *AuthService) Register(ctx context.Context, user *models.User, password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	var created *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := s.repos.Users(tx).Create(ctx, user)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		cred := &models.Credential{Email: u.Email, PasswordHash: hash, UserID: u.ID}
		if _, err := s.repos.Credentials(tx).Create(ctx, cred); err != nil {
			return fmt.Errorf("error creating credential: %w", err)
		}
		created = u
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return "", common.ErrEmailTaken
		}
		return "", err
	}

	return auth.GenerateToken(created.ID, created.Email, s.jwtSecret, s.tokenValidity)
}

// Login verifies the email/password pair and returns a token on success.
// Unknown email and wrong password both return common.ErrInvalidCredentials;
// callers must not be able to tell the two apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	cred, err := s.repos.Credentials(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, dummyHash)
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, cred.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	return auth.GenerateToken(cred.User.ID, cred.User.Email, s.jwtSecret, s.tokenValidity)
}
