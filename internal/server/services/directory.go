package services

import (
	"context"
	"database/sql"

	"github.com/peopled/peopled/internal/server/models"
	"github.com/peopled/peopled/internal/server/repositories/repomanager"
)

// DirectoryService provides CRUD over identity records. It never touches
// credential records; those belong to AuthService.
type DirectoryService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

func NewDirectoryService(db *sql.DB, m repomanager.RepositoryManager) *DirectoryService {
	return &DirectoryService{db: db, repos: m}
}

// List returns every identity record in the directory.
func (s *DirectoryService) List(ctx context.Context) ([]*models.User, error) {
	return s.repos.Users(s.db).List(ctx)
}

// Get returns the identity record with the given id, or common.ErrorNotFound.
func (s *DirectoryService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repos.Users(s.db).GetByID(ctx, id)
}

// Create inserts a new identity record and returns it with its generated id.
func (s *DirectoryService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return s.repos.Users(s.db).Create(ctx, user)
}

// Update merges the patch into the stored record and persists the result.
// Fields absent from the patch keep their stored values.
func (s *DirectoryService) Update(ctx context.Context, id int64, patch *models.UserPatch) (*models.User, error) {
	repo := s.repos.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(user)
	return repo.Update(ctx, user)
}

// Delete removes the identity record with the given id, or returns
// common.ErrorNotFound.
func (s *DirectoryService) Delete(ctx context.Context, id int64) error {
	return s.repos.Users(s.db).Delete(ctx, id)
}
