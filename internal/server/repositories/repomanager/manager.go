package repomanager

import (
	"context"
	"database/sql"

	"github.com/peopled/peopled/internal/dbx"
	"github.com/peopled/peopled/internal/server/repositories/credentials"
	"github.com/peopled/peopled/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DBTX, so the same
// repository code runs against *sql.DB and inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Credentials(db dbx.DBTX) credentials.Repository
}
