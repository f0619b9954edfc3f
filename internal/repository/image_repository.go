package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"galleryCPT/internal/models"

	"github.com/jmoiron/sqlx"
)

type imageRepository struct {
	db *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	if image.CreatedAt.IsZero() {
		image.CreatedAt = time.Now()
	}

	query := `INSERT INTO image (picture_id, object_name, image_url, created_at) VALUES ($1, $2, $3, $4) RETURNING id`

	err := r.db.GetContext(ctx, &image.ID, query, image.PictureID, image.ObjectName, image.ImageURL, image.CreatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при создании изображения: %w", err)
	}

	return nil
}

func (r *imageRepository) GetByID(ctx context.Context, id int64) (*models.Image, error) {
	query := `SELECT * FROM image WHERE id = $1`

	var image models.Image
	err := r.db.GetContext(ctx, &image, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("ошибка при получении изображения: %w", err)
	}

	return &image, nil
}

func (r *imageRepository) GetByPictureID(ctx context.Context, pictureID int64) ([]models.Image, error) {
	query := `SELECT * FROM image WHERE picture_id = $1 ORDER BY created_at`

	var images []models.Image
	err := r.db.SelectContext(ctx, &images, query, pictureID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении изображений: %w", err)
	}

	if images == nil {
		images = []models.Image{}
	}

	return images, nil
}

func (r *imageRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM image WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении изображения: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrImageNotFound
	}

	return nil
}
