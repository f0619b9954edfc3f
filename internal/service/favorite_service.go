package service

import (
	"context"
	"errors"

	"galleryCPT/internal/models"
	"galleryCPT/internal/repository"
)

type FavoriteService interface {
	AddToFavorites(ctx context.Context, userID, pictureID int64) (*models.Favorite, error)
	RemoveFromFavorites(ctx context.Context, userID, pictureID int64) error
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	pictureRepo  repository.PictureRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, pictureRepo repository.PictureRepository) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		pictureRepo:  pictureRepo,
	}
}

func (s *favoriteService) AddToFavorites(ctx context.Context, userID, pictureID int64) (*models.Favorite, error) {
	// картина должна существовать
	if _, err := s.pictureRepo.GetByID(ctx, pictureID); err != nil {
		return nil, err
	}

	// пара (userID, pictureID) не должна быть уже добавлена
	_, err := s.favoriteRepo.GetByUserAndPicture(ctx, userID, pictureID)
	if err == nil {
		return nil, repository.ErrFavoriteExists
	}
	if !errors.Is(err, repository.ErrFavoriteNotFound) {
		return nil, err
	}

	favorite := &models.Favorite{
		UserID:    userID,
		PictureID: pictureID,
	}

	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}

	return favorite, nil
}

func (s *favoriteService) RemoveFromFavorites(ctx context.Context, userID, pictureID int64) error {
	return s.favoriteRepo.Delete(ctx, userID, pictureID)
}
