package service

import (
	"context"

	"galleryCPT/internal/models"
	"galleryCPT/internal/repository"
)

type JoinService interface {
	CreateLink(ctx context.Context, authorID, pictureID int64) (*models.TypeSink, error)
	GetUsersWithFavoritePicturesByAuthor(ctx context.Context, authorName string) ([]models.UserWithFavorites, error)
}

type joinService struct {
	joinRepo    repository.JoinRepository
	authorRepo  repository.AuthorRepository
	pictureRepo repository.PictureRepository
}

func NewJoinService(joinRepo repository.JoinRepository, authorRepo repository.AuthorRepository, pictureRepo repository.PictureRepository) JoinService {
	return &joinService{
		joinRepo:    joinRepo,
		authorRepo:  authorRepo,
		pictureRepo: pictureRepo,
	}
}

func (s *joinService) CreateLink(ctx context.Context, authorID, pictureID int64) (*models.TypeSink, error) {
	if _, err := s.authorRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	if _, err := s.pictureRepo.GetByID(ctx, pictureID); err != nil {
		return nil, err
	}

	link := &models.TypeSink{
		AuthorID:  authorID,
		PictureID: pictureID,
	}

	if err := s.joinRepo.CreateLink(ctx, link); err != nil {
		return nil, err
	}

	return link, nil
}

func (s *joinService) GetUsersWithFavoritePicturesByAuthor(ctx context.Context, authorName string) ([]models.UserWithFavorites, error) {
	return s.joinRepo.GetUsersWithFavoritePicturesByAuthor(ctx, authorName)
}
