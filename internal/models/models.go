package models

import (
	"time"
)

type User struct {
	ID       int64  `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
	Role     string `json:"role" db:"role"`
}

type Author struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Picture struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Author      string  `json:"author" db:"author"`
	Description *string `json:"description" db:"description"`
}

type Favorite struct {
	ID        int64 `json:"id" db:"id"`
	UserID    int64 `json:"userId" db:"user_id"`
	PictureID int64 `json:"pictureId" db:"picture_id"`
}

// TypeSink - связующая запись автор <-> картина
type TypeSink struct {
	ID        int64 `json:"id" db:"id"`
	AuthorID  int64 `json:"authorId" db:"author_id"`
	PictureID int64 `json:"pictureId" db:"picture_id"`
}

type Image struct {
	ID         int64     `json:"id" db:"id"`
	PictureID  int64     `json:"pictureId" db:"picture_id"`
	ObjectName string    `json:"objectName" db:"object_name"`
	ImageURL   string    `json:"imageUrl" db:"image_url"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// FavoriteWithPicture - запись избранного вместе с картиной
type FavoriteWithPicture struct {
	ID      int64   `json:"id"`
	Picture Picture `json:"picture"`
}

// UserWithFavorites - пользователь с вложенными избранными картинами,
// результат join-запроса по имени автора
type UserWithFavorites struct {
	ID        int64                 `json:"id"`
	Email     string                `json:"email"`
	Role      string                `json:"role"`
	Favorites []FavoriteWithPicture `json:"favorites"`
}
