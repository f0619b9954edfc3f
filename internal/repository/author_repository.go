package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"galleryCPT/internal/models"

	"github.com/jmoiron/sqlx"
)

type authorRepository struct {
	db *sqlx.DB
}

func NewAuthorRepository(db *sqlx.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) GetAll(ctx context.Context) ([]models.Author, error) {
	query := `SELECT * FROM author ORDER BY id`

	var authors []models.Author
	err := r.db.SelectContext(ctx, &authors, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка авторов: %w", err)
	}

	if authors == nil {
		authors = []models.Author{}
	}

	return authors, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	query := `SELECT * FROM author WHERE id = $1`

	var author models.Author
	err := r.db.GetContext(ctx, &author, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAuthorNotFound
		}
		return nil, fmt.Errorf("ошибка при получении автора: %w", err)
	}

	return &author, nil
}

func (r *authorRepository) Create(ctx context.Context, author *models.Author) error {
	query := `INSERT INTO author (name) VALUES ($1) RETURNING id`

	err := r.db.GetContext(ctx, &author.ID, query, author.Name)
	if err != nil {
		return fmt.Errorf("ошибка при создании автора: %w", err)
	}

	return nil
}

func (r *authorRepository) Update(ctx context.Context, author *models.Author) error {
	// сначала загружаем запись, как делает контроллер: отсутствие - это 404
	if _, err := r.GetByID(ctx, author.ID); err != nil {
		return err
	}

	query := `UPDATE author SET name = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, author.Name, author.ID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении автора: %w", err)
	}

	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM author WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении автора: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrAuthorNotFound
	}

	return nil
}
