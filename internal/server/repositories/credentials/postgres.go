// Package credentials provides the PostgreSQL-backed credential store used by
// the auth flows. Lookups join the owning user row so login needs exactly
// one round trip.
package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/peopled/peopled/internal/common"
	"github.com/peopled/peopled/internal/dbx"
	"github.com/peopled/peopled/internal/server/models"
)

// pgUniqueViolation is the PostgreSQL error code raised when the unique email
// (or user_id) constraint on credentials rejects an insert.
const pgUniqueViolation = "23505"

// isUniqueViolation recognizes a rejected insert on both supported drivers:
// PostgreSQL in production and the modernc SQLite driver used by the tests.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
	}
	return false
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, cred *models.Credential) (*models.Credential, error) {
	query := `
		INSERT INTO credentials (email, password_hash, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, cred.Email, cred.PasswordHash, cred.UserID).Scan(&cred.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrEmailTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cred, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Credential, error) {
	query := `
		SELECT c.id, c.email, c.password_hash, c.user_id,
			u.id, u.name, u.username, u.email, u.phone, u.website,
			u.address_street, u.address_suite, u.address_city, u.address_zipcode,
			u.address_geo_lat, u.address_geo_lng,
			u.company_name, u.company_catch_phrase, u.company_bs
		FROM credentials c
		JOIN users u ON u.id = c.user_id
		WHERE c.email = $1
	`
	cred := &models.Credential{User: &models.User{}}
	u := cred.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&cred.ID, &cred.Email, &cred.PasswordHash, &cred.UserID,
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Website,
		&u.Address.Street, &u.Address.Suite, &u.Address.City, &u.Address.Zipcode,
		&u.Address.Geo.Lat, &u.Address.Geo.Lng,
		&u.Company.Name, &u.Company.CatchPhrase, &u.Company.BS)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cred, nil
}
