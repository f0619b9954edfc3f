package repository

import (
	"context"
	"errors"

	"galleryCPT/internal/models"

	"github.com/jmoiron/sqlx"
)

// Сигнальные ошибки слоя репозиториев. Хендлеры переводят их
// в HTTP-статусы через errors.Is.
var (
	ErrAuthorNotFound     = errors.New("автор не найден")
	ErrPictureNotFound    = errors.New("картина не найдена")
	ErrFavoriteNotFound   = errors.New("картина не найдена в списке избранных")
	ErrFavoriteExists     = errors.New("картина уже добавлена в избранное")
	ErrLinkExists         = errors.New("автор уже связан с картиной")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
	ErrUserExists         = errors.New("пользователь с таким email уже существует")
	ErrImageNotFound      = errors.New("изображение не найдено")
)

type AuthorRepository interface {
	GetAll(ctx context.Context) ([]models.Author, error)
	GetByID(ctx context.Context, id int64) (*models.Author, error)
	Create(ctx context.Context, author *models.Author) error
	Update(ctx context.Context, author *models.Author) error
	Delete(ctx context.Context, id int64) error
}

type PictureRepository interface {
	GetAll(ctx context.Context) ([]models.Picture, error)
	GetByID(ctx context.Context, id int64) (*models.Picture, error)
	Create(ctx context.Context, picture *models.Picture) error
	Update(ctx context.Context, picture *models.Picture) error
	Delete(ctx context.Context, id int64) error
}

type FavoriteRepository interface {
	GetByUserAndPicture(ctx context.Context, userID, pictureID int64) (*models.Favorite, error)
	Create(ctx context.Context, favorite *models.Favorite) error
	Delete(ctx context.Context, userID, pictureID int64) error
}

type JoinRepository interface {
	CreateLink(ctx context.Context, link *models.TypeSink) error
	GetUsersWithFavoritePicturesByAuthor(ctx context.Context, authorName string) ([]models.UserWithFavorites, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, id int64) (*models.Image, error)
	GetByPictureID(ctx context.Context, pictureID int64) ([]models.Image, error)
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	Author   AuthorRepository
	Picture  PictureRepository
	Favorite FavoriteRepository
	Join     JoinRepository
	User     UserRepository
	Image    ImageRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Author:   NewAuthorRepository(db),
		Picture:  NewPictureRepository(db),
		Favorite: NewFavoriteRepository(db),
		Join:     NewJoinRepository(db),
		User:     NewUserRepository(db),
		Image:    NewImageRepository(db),
	}
}
