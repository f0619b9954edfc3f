package service

import (
	"context"

	"galleryCPT/internal/models"
	"galleryCPT/internal/repository"
)

type AuthorService interface {
	GetAll(ctx context.Context) ([]models.Author, error)
	GetByID(ctx context.Context, id int64) (*models.Author, error)
	Create(ctx context.Context, name string) (*models.Author, error)
	Update(ctx context.Context, id int64, name string) (*models.Author, error)
	Delete(ctx context.Context, id int64) error
}

type authorService struct {
	authorRepo repository.AuthorRepository
}

func NewAuthorService(authorRepo repository.AuthorRepository) AuthorService {
	return &authorService{authorRepo: authorRepo}
}

func (s *authorService) GetAll(ctx context.Context) ([]models.Author, error) {
	return s.authorRepo.GetAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	return s.authorRepo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, name string) (*models.Author, error) {
	author := &models.Author{Name: name}

	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, err
	}

	return author, nil
}

func (s *authorService) Update(ctx context.Context, id int64, name string) (*models.Author, error) {
	author := &models.Author{ID: id, Name: name}

	if err := s.authorRepo.Update(ctx, author); err != nil {
		return nil, err
	}

	return author, nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	return s.authorRepo.Delete(ctx, id)
}
