package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/acortes/libreserve/internal/common"
	"github.com/acortes/libreserve/internal/models"
	"github.com/acortes/libreserve/internal/repositories/books"
)

// BookService validates and persists catalogue entries.
type BookService struct {
	books books.Repository
}

func NewBookService(repo books.Repository) *BookService {
	return &BookService{books: repo}
}

func validateBook(b *models.Book) error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	return nil
}

func (s *BookService) Create(ctx context.Context, b *models.Book) (string, error) {
	if err := validateBook(b); err != nil {
		return "", err
	}
	id, err := s.books.Create(ctx, b)
	if err != nil {
		return "", fmt.Errorf("error saving book: %w", err)
	}
	return id, nil
}

func (s *BookService) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.books.GetAll(ctx)
}

func (s *BookService) Get(ctx context.Context, id string) (*models.Book, error) {
	return s.books.GetByID(ctx, id)
}

func (s *BookService) Update(ctx context.Context, id string, b *models.Book) error {
	if err := validateBook(b); err != nil {
		return err
	}
	return s.books.Update(ctx, id, b)
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	return s.books.Delete(ctx, id)
}
