// Package services holds the business logic between the CLI and the
// repositories. The reservation service carries the lifecycle engine:
// due-date computation, remaining-day counts, and at-most-once reminder
// dispatch.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/acortes/libreserve/internal/common"
	"github.com/acortes/libreserve/internal/models"
	"github.com/acortes/libreserve/internal/repositories/users"
)

// UserService validates and persists library members.
type UserService struct {
	users users.Repository
}

func NewUserService(repo users.Repository) *UserService {
	return &UserService{users: repo}
}

func validateUser(u *models.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if strings.TrimSpace(u.Document) == "" {
		return fmt.Errorf("%w: document is required", common.ErrValidation)
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, u *models.User) (string, error) {
	if err := validateUser(u); err != nil {
		return "", err
	}
	id, err := s.users.Create(ctx, u)
	if err != nil {
		return "", fmt.Errorf("error saving user: %w", err)
	}
	return id, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.GetAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) FindByDocument(ctx context.Context, document string) (*models.User, error) {
	return s.users.FindByDocument(ctx, document)
}

func (s *UserService) Update(ctx context.Context, id string, u *models.User) error {
	if err := validateUser(u); err != nil {
		return err
	}
	return s.users.Update(ctx, id, u)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
