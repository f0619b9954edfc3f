package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"galleryCPT/internal/models"

	"github.com/jmoiron/sqlx"
)

type pictureRepository struct {
	db *sqlx.DB
}

func NewPictureRepository(db *sqlx.DB) PictureRepository {
	return &pictureRepository{db: db}
}

func (r *pictureRepository) GetAll(ctx context.Context) ([]models.Picture, error) {
	query := `SELECT * FROM picture ORDER BY id`

	var pictures []models.Picture
	err := r.db.SelectContext(ctx, &pictures, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка картин: %w", err)
	}

	if pictures == nil {
		pictures = []models.Picture{}
	}

	return pictures, nil
}

func (r *pictureRepository) GetByID(ctx context.Context, id int64) (*models.Picture, error) {
	query := `SELECT * FROM picture WHERE id = $1`

	var picture models.Picture
	err := r.db.GetContext(ctx, &picture, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPictureNotFound
		}
		return nil, fmt.Errorf("ошибка при получении картины: %w", err)
	}

	return &picture, nil
}

func (r *pictureRepository) Create(ctx context.Context, picture *models.Picture) error {
	query := `INSERT INTO picture (title, author, description) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.GetContext(ctx, &picture.ID, query, picture.Title, picture.Author, picture.Description)
	if err != nil {
		return fmt.Errorf("ошибка при создании картины: %w", err)
	}

	return nil
}

// Update перезаписывает все три поля целиком, без merge:
// не переданное поле затирается пустым значением.
func (r *pictureRepository) Update(ctx context.Context, picture *models.Picture) error {
	if _, err := r.GetByID(ctx, picture.ID); err != nil {
		return err
	}

	query := `UPDATE picture SET title = $1, author = $2, description = $3 WHERE id = $4`

	_, err := r.db.ExecContext(ctx, query, picture.Title, picture.Author, picture.Description, picture.ID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении картины: %w", err)
	}

	return nil
}

func (r *pictureRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM picture WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении картины: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPictureNotFound
	}

	return nil
}
