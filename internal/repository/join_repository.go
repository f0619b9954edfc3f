package repository

import (
	"context"
	"errors"
	"fmt"

	"galleryCPT/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type joinRepository struct {
	db *sqlx.DB
}

func NewJoinRepository(db *sqlx.DB) JoinRepository {
	return &joinRepository{db: db}
}

// Один запрос вместо трёх отдельных выборок: пользователи, их избранное
// и картины собираются за один проход по связке typesink.
const queryUsersWithFavoritesByAuthor = `SELECT u.id AS user_id, u.email, u.role, f.id AS favorite_id, p.id AS picture_id, p.title, p.author, p.description FROM "user" u JOIN favorite f ON f.user_id = u.id JOIN picture p ON p.id = f.picture_id JOIN typesink t ON t.picture_id = p.id JOIN author a ON a.id = t.author_id WHERE a.name = $1 ORDER BY u.id, f.id`

type userFavoriteRow struct {
	UserID      int64   `db:"user_id"`
	Email       string  `db:"email"`
	Role        string  `db:"role"`
	FavoriteID  int64   `db:"favorite_id"`
	PictureID   int64   `db:"picture_id"`
	Title       string  `db:"title"`
	Author      string  `db:"author"`
	Description *string `db:"description"`
}

func (r *joinRepository) CreateLink(ctx context.Context, link *models.TypeSink) error {
	query := `INSERT INTO typesink (author_id, picture_id) VALUES ($1, $2) RETURNING id`

	err := r.db.GetContext(ctx, &link.ID, query, link.AuthorID, link.PictureID)
	if err != nil {
		// пара уже связана - UNIQUE (author_id, picture_id)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrLinkExists
		}
		return fmt.Errorf("ошибка при создании связи автор-картина: %w", err)
	}

	return nil
}

func (r *joinRepository) GetUsersWithFavoritePicturesByAuthor(ctx context.Context, authorName string) ([]models.UserWithFavorites, error) {
	var rows []userFavoriteRow
	err := r.db.SelectContext(ctx, &rows, queryUsersWithFavoritesByAuthor, authorName)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей с избранными картинами: %w", err)
	}

	// группируем плоские строки в пользователей с вложенным избранным,
	// сохраняя порядок из ORDER BY
	users := make([]models.UserWithFavorites, 0)
	index := make(map[int64]int)
	seen := make(map[int64]bool)

	for _, row := range rows {
		i, ok := index[row.UserID]
		if !ok {
			users = append(users, models.UserWithFavorites{
				ID:        row.UserID,
				Email:     row.Email,
				Role:      row.Role,
				Favorites: []models.FavoriteWithPicture{},
			})
			i = len(users) - 1
			index[row.UserID] = i
		}

		// картина могла попасть в выборку дважды через разные строки
		// typesink, запись избранного при этом одна
		if seen[row.FavoriteID] {
			continue
		}
		seen[row.FavoriteID] = true

		users[i].Favorites = append(users[i].Favorites, models.FavoriteWithPicture{
			ID: row.FavoriteID,
			Picture: models.Picture{
				ID:          row.PictureID,
				Title:       row.Title,
				Author:      row.Author,
				Description: row.Description,
			},
		})
	}

	return users, nil
}
