package service

import (
	"galleryCPT/internal/config"
	"galleryCPT/internal/repository"
	"galleryCPT/internal/storage"
)

type Service struct {
	Author   AuthorService
	Picture  PictureService
	Favorite FavoriteService
	Join     JoinService
	Auth     AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Author:   NewAuthorService(rep.Author),
		Picture:  NewPictureService(rep.Picture, rep.Image, storage, cfg),
		Favorite: NewFavoriteService(rep.Favorite, rep.Picture),
		Join:     NewJoinService(rep.Join, rep.Author, rep.Picture),
		Auth:     NewAuthService(rep.User, cfg),
	}
}
