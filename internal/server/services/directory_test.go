package services

import (
	"context"
	"errors"
	"testing"

	"github.com/peopled/peopled/internal/common"
	"github.com/peopled/peopled/internal/server/models"
)

func newDirectory(u *fakeUsersRepo) *DirectoryService {
	return NewDirectoryService(nil, &fakeRepoManager{u: u})
}

func TestDirectoryList(t *testing.T) {
	want := []*models.User{profile()}
	s := newDirectory(&fakeUsersRepo{listOut: want})

	got, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || got[0].Username != "testuser" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestDirectoryGet_NotFound(t *testing.T) {
	s := newDirectory(&fakeUsersRepo{getErr: common.ErrorNotFound})

	_, err := s.Get(context.Background(), 999)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDirectoryCreate(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newDirectory(repo)

	got, err := s.Create(context.Background(), profile())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID == 0 {
		t.Fatalf("expected generated id, got %+v", got)
	}
}

func TestDirectoryUpdate_PartialPatchChangesOnlyProvidedFields(t *testing.T) {
	stored := profile()
	stored.ID = 1
	repo := &fakeUsersRepo{getOut: stored}
	s := newDirectory(repo)

	name := "Updated Name"
	got, err := s.Update(context.Background(), 1, &models.UserPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Updated Name" {
		t.Fatalf("name not updated: %+v", got)
	}
	if got.Username != "testuser" || got.Email != "test@example.com" ||
		got.Address.City != "Test City" || got.Company.Name != "Test Company" {
		t.Fatalf("fields outside the patch changed: %+v", got)
	}
	if repo.updated == nil || repo.updated.Name != "Updated Name" {
		t.Fatalf("merged record was not persisted: %+v", repo.updated)
	}
}

func TestDirectoryUpdate_NotFound(t *testing.T) {
	s := newDirectory(&fakeUsersRepo{getErr: common.ErrorNotFound})

	name := "x"
	_, err := s.Update(context.Background(), 999, &models.UserPatch{Name: &name})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

func TestDirectoryDelete_NotFound(t *testing.T) {
	s := newDirectory(&fakeUsersRepo{deleteErr: common.ErrorNotFound})

	err := s.Delete(context.Background(), 999)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}
