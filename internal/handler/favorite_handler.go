package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"galleryCPT/internal/repository"
)

// FavoriteRequest - тело запросов /api/favorite/add и /api/favorite/remove.
// Поле называется bookId для совместимости с существующими клиентами,
// в хранилище это picture_id.
type FavoriteRequest struct {
	UserID int64 `json:"userId" validate:"required"`
	BookID int64 `json:"bookId" validate:"required"`
}

// AddToFavorites - добавить картину в избранное пользователя
func (h *Handlers) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поля userId и bookId обязательны", http.StatusBadRequest)
		return
	}

	favorite, err := h.FavoriteService.AddToFavorites(r.Context(), req.UserID, req.BookID)
	if err != nil {
		if errors.Is(err, repository.ErrPictureNotFound) {
			WriteError(w, "Картина не найдена", http.StatusNotFound)
			return
		}
		if errors.Is(err, repository.ErrFavoriteExists) {
			WriteError(w, "Картина уже добавлена в избранное", http.StatusBadRequest)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, favorite, http.StatusCreated)
}

// RemoveFromFavorites - убрать картину из избранного пользователя
func (h *Handlers) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поля userId и bookId обязательны", http.StatusBadRequest)
		return
	}

	if err := h.FavoriteService.RemoveFromFavorites(r.Context(), req.UserID, req.BookID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			WriteError(w, "Картина не найдена в списке избранных", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Картина успешно удалена из избранного"}, http.StatusOK)
}
