package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"galleryCPT/internal/repository"
)

type AuthorRequest struct {
	Name string `json:"name" validate:"required"`
}

// GetAuthors - список всех авторов
func (h *Handlers) GetAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.AuthorService.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, authors, http.StatusOK)
}

// GetAuthorByID - информация об авторе по id
func (h *Handlers) GetAuthorByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Неверный id", http.StatusBadRequest)
		return
	}

	author, err := h.AuthorService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			WriteError(w, "Автор не найден", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, author, http.StatusOK)
}

// CreateAuthor - создать нового автора
func (h *Handlers) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req AuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поле name обязательно", http.StatusBadRequest)
		return
	}

	author, err := h.AuthorService.Create(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, author, http.StatusCreated)
}

// UpdateAuthor - обновить имя автора по id
func (h *Handlers) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Неверный id", http.StatusBadRequest)
		return
	}

	var req AuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поле name обязательно", http.StatusBadRequest)
		return
	}

	author, err := h.AuthorService.Update(r.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			WriteError(w, "Автор не найден", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, author, http.StatusOK)
}

// DeleteAuthor - удалить автора по id
func (h *Handlers) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Неверный id", http.StatusBadRequest)
		return
	}

	if err := h.AuthorService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrAuthorNotFound) {
			WriteError(w, "Автор не найден", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Автор успешно удален"}, http.StatusOK)
}
