// Package users provides the PostgreSQL-backed identity store. Address,
// geo and company value objects are flattened into columns on the users row;
// they have no rows or ids of their own.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/peopled/peopled/internal/common"
	"github.com/peopled/peopled/internal/dbx"
	"github.com/peopled/peopled/internal/server/models"
)

// userColumns is the select list shared by every read query, in scanUser order.
const userColumns = `id, name, username, email, phone, website,
		address_street, address_suite, address_city, address_zipcode,
		address_geo_lat, address_geo_lng,
		company_name, company_catch_phrase, company_bs`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	u := &models.User{}
	err := s.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Website,
		&u.Address.Street, &u.Address.Suite, &u.Address.City, &u.Address.Zipcode,
		&u.Address.Geo.Lat, &u.Address.Geo.Lng,
		&u.Company.Name, &u.Company.CatchPhrase, &u.Company.BS)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (name, username, email, phone, website,
			address_street, address_suite, address_city, address_zipcode,
			address_geo_lat, address_geo_lng,
			company_name, company_catch_phrase, company_bs)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Username, user.Email, user.Phone, user.Website,
		user.Address.Street, user.Address.Suite, user.Address.City, user.Address.Zipcode,
		user.Address.Geo.Lat, user.Address.Geo.Lng,
		user.Company.Name, user.Company.CatchPhrase, user.Company.BS).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		UPDATE users SET name = $1, username = $2, email = $3, phone = $4, website = $5,
			address_street = $6, address_suite = $7, address_city = $8, address_zipcode = $9,
			address_geo_lat = $10, address_geo_lng = $11,
			company_name = $12, company_catch_phrase = $13, company_bs = $14
		WHERE id = $15
	`
	res, err := r.db.ExecContext(ctx, query,
		user.Name, user.Username, user.Email, user.Phone, user.Website,
		user.Address.Street, user.Address.Suite, user.Address.City, user.Address.Zipcode,
		user.Address.Geo.Lat, user.Address.Geo.Lng,
		user.Company.Name, user.Company.CatchPhrase, user.Company.BS,
		user.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
