package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galleryCPT/internal/models"
)

func TestJoinRepository_CreateLink(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewJoinRepository(sqlxDB)

	ctx := context.Background()

	t.Run("Успешное создание связи", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO typesink (author_id, picture_id) VALUES ($1, $2) RETURNING id`).
			WithArgs(int64(1), int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		link := &models.TypeSink{AuthorID: 1, PictureID: 5}
		err := repo.CreateLink(ctx, link)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), link.ID)
	})

	t.Run("Повторная связь той же пары", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO typesink (author_id, picture_id) VALUES ($1, $2) RETURNING id`).
			WithArgs(int64(1), int64(5)).
			WillReturnError(&pq.Error{Code: "23505"})

		link := &models.TypeSink{AuthorID: 1, PictureID: 5}
		err := repo.CreateLink(ctx, link)

		assert.ErrorIs(t, err, ErrLinkExists)
	})
}

func TestJoinRepository_GetUsersWithFavoritePicturesByAuthor(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewJoinRepository(sqlxDB)

	ctx := context.Background()

	columns := []string{"user_id", "email", "role", "favorite_id", "picture_id", "title", "author", "description"}

	t.Run("Строки группируются по пользователям", func(t *testing.T) {
		mock.ExpectQuery(queryUsersWithFavoritesByAuthor).
			WithArgs("Рембрандт").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "first@example.com", "user", 10, 5, "Ночной дозор", "Рембрандт", "Групповой портрет").
				AddRow(1, "first@example.com", "user", 11, 6, "Даная", "Рембрандт", nil).
				AddRow(2, "second@example.com", "admin", 12, 5, "Ночной дозор", "Рембрандт", "Групповой портрет"))

		users, err := repo.GetUsersWithFavoritePicturesByAuthor(ctx, "Рембрандт")

		require.NoError(t, err)
		require.Len(t, users, 2)

		assert.Equal(t, int64(1), users[0].ID)
		assert.Equal(t, "first@example.com", users[0].Email)
		require.Len(t, users[0].Favorites, 2)
		assert.Equal(t, "Ночной дозор", users[0].Favorites[0].Picture.Title)
		assert.Equal(t, "Даная", users[0].Favorites[1].Picture.Title)
		assert.Nil(t, users[0].Favorites[1].Picture.Description)

		assert.Equal(t, int64(2), users[1].ID)
		require.Len(t, users[1].Favorites, 1)
		assert.Equal(t, int64(12), users[1].Favorites[0].ID)
	})

	t.Run("Дубль строки по одной записи избранного схлопывается", func(t *testing.T) {
		// картина с двумя строками в typesink попадает в выборку дважды,
		// но запись избранного в ответе должна быть одна
		mock.ExpectQuery(queryUsersWithFavoritesByAuthor).
			WithArgs("Рембрандт").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "first@example.com", "user", 10, 5, "Ночной дозор", "Рембрандт", nil).
				AddRow(1, "first@example.com", "user", 10, 5, "Ночной дозор", "Рембрандт", nil))

		users, err := repo.GetUsersWithFavoritePicturesByAuthor(ctx, "Рембрандт")

		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Len(t, users[0].Favorites, 1)
		assert.Equal(t, int64(10), users[0].Favorites[0].ID)
		assert.Equal(t, "Ночной дозор", users[0].Favorites[0].Picture.Title)
	})

	t.Run("Нет совпадений - пустой список, не ошибка", func(t *testing.T) {
		mock.ExpectQuery(queryUsersWithFavoritesByAuthor).
			WithArgs("Вермеер").
			WillReturnRows(sqlmock.NewRows(columns))

		users, err := repo.GetUsersWithFavoritePicturesByAuthor(ctx, "Вермеер")

		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Len(t, users, 0)
	})
}
