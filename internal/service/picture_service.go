package service

import (
	"context"
	"io"
	"log"

	"galleryCPT/internal/config"
	"galleryCPT/internal/models"
	"galleryCPT/internal/repository"
	"galleryCPT/internal/storage"
)

type PictureService interface {
	GetAll(ctx context.Context) ([]models.Picture, error)
	GetByID(ctx context.Context, id int64) (*models.Picture, error)
	Create(ctx context.Context, picture *models.Picture) error
	Update(ctx context.Context, picture *models.Picture) error
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, pictureID int64, fileName string, file io.Reader, size int64) (*models.Image, error)
	GetImages(ctx context.Context, pictureID int64) ([]models.Image, error)
	DeleteImage(ctx context.Context, pictureID, imageID int64) error
}

type pictureService struct {
	pictureRepo repository.PictureRepository
	imageRepo   repository.ImageRepository
	storage     storage.Storage
	cfg         *config.Config
}

func NewPictureService(pictureRepo repository.PictureRepository, imageRepo repository.ImageRepository, storage storage.Storage, cfg *config.Config) PictureService {
	return &pictureService{
		pictureRepo: pictureRepo,
		imageRepo:   imageRepo,
		storage:     storage,
		cfg:         cfg,
	}
}

func (s *pictureService) GetAll(ctx context.Context) ([]models.Picture, error) {
	return s.pictureRepo.GetAll(ctx)
}

func (s *pictureService) GetByID(ctx context.Context, id int64) (*models.Picture, error) {
	return s.pictureRepo.GetByID(ctx, id)
}

func (s *pictureService) Create(ctx context.Context, picture *models.Picture) error {
	return s.pictureRepo.Create(ctx, picture)
}

func (s *pictureService) Update(ctx context.Context, picture *models.Picture) error {
	return s.pictureRepo.Update(ctx, picture)
}

func (s *pictureService) Delete(ctx context.Context, id int64) error {
	// объекты в MinIO удаляем до строк: каскад в БД снесёт записи image,
	// и имена объектов будет уже не восстановить
	images, err := s.imageRepo.GetByPictureID(ctx, id)
	if err != nil {
		return err
	}

	for _, image := range images {
		if err := s.storage.DeleteImage(ctx, image.ObjectName); err != nil {
			log.Printf("не удалось удалить объект %s: %v", image.ObjectName, err)
		}
	}

	return s.pictureRepo.Delete(ctx, id)
}

func (s *pictureService) UploadImage(ctx context.Context, pictureID int64, fileName string, file io.Reader, size int64) (*models.Image, error) {
	if _, err := s.pictureRepo.GetByID(ctx, pictureID); err != nil {
		return nil, err
	}

	objectName, imageURL, err := s.storage.UploadImage(ctx, pictureID, fileName, file, size)
	if err != nil {
		return nil, err
	}

	image := &models.Image{
		PictureID:  pictureID,
		ObjectName: objectName,
		ImageURL:   imageURL,
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		// запись не создалась - убираем осиротевший объект
		if delErr := s.storage.DeleteImage(ctx, objectName); delErr != nil {
			log.Printf("не удалось удалить объект %s: %v", objectName, delErr)
		}
		return nil, err
	}

	return image, nil
}

func (s *pictureService) GetImages(ctx context.Context, pictureID int64) ([]models.Image, error) {
	if _, err := s.pictureRepo.GetByID(ctx, pictureID); err != nil {
		return nil, err
	}

	return s.imageRepo.GetByPictureID(ctx, pictureID)
}

func (s *pictureService) DeleteImage(ctx context.Context, pictureID, imageID int64) error {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	if image.PictureID != pictureID {
		return repository.ErrImageNotFound
	}

	if err := s.storage.DeleteImage(ctx, image.ObjectName); err != nil {
		return err
	}

	return s.imageRepo.Delete(ctx, imageID)
}
