package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"galleryCPT/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) GetByUserAndPicture(ctx context.Context, userID, pictureID int64) (*models.Favorite, error) {
	query := `SELECT * FROM favorite WHERE user_id = $1 AND picture_id = $2`

	var favorite models.Favorite
	err := r.db.GetContext(ctx, &favorite, query, userID, pictureID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("ошибка при поиске избранного: %w", err)
	}

	return &favorite, nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	query := `INSERT INTO favorite (user_id, picture_id) VALUES ($1, $2) RETURNING id`

	err := r.db.GetContext(ctx, &favorite.ID, query, favorite.UserID, favorite.PictureID)
	if err != nil {
		// две параллельные вставки одной пары: вторая упирается в
		// UNIQUE (user_id, picture_id) и получает тот же конфликт
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrFavoriteExists
		}
		return fmt.Errorf("ошибка при добавлении в избранное: %w", err)
	}

	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, pictureID int64) error {
	query := `DELETE FROM favorite WHERE user_id = $1 AND picture_id = $2`

	result, err := r.db.ExecContext(ctx, query, userID, pictureID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении из избранного: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}
