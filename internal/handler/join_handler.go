package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"galleryCPT/internal/repository"

	"github.com/gorilla/mux"
)

type JoinRequest struct {
	AuthorID  int64 `json:"authorId" validate:"required"`
	PictureID int64 `json:"pictureId" validate:"required"`
}

// CreateJoinLink - связать автора и картину
func (h *Handlers) CreateJoinLink(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поля authorId и pictureId обязательны", http.StatusBadRequest)
		return
	}

	link, err := h.JoinService.CreateLink(r.Context(), req.AuthorID, req.PictureID)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			WriteError(w, "Автор не найден", http.StatusNotFound)
			return
		}
		if errors.Is(err, repository.ErrPictureNotFound) {
			WriteError(w, "Картина не найдена", http.StatusNotFound)
			return
		}
		if errors.Is(err, repository.ErrLinkExists) {
			WriteError(w, "Автор уже связан с картиной", http.StatusBadRequest)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, link, http.StatusCreated)
}

// GetUsersWithFavoritePicturesByAuthor - пользователи, у которых в избранном
// есть картины указанного автора
func (h *Handlers) GetUsersWithFavoritePicturesByAuthor(w http.ResponseWriter, r *http.Request) {
	authorName := mux.Vars(r)["authorName"]

	users, err := h.JoinService.GetUsersWithFavoritePicturesByAuthor(r.Context(), authorName)
	if err != nil {
		WriteError(w, "Произошла ошибка при получении пользователей с избранными картинами", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}
