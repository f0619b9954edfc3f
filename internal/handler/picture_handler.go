package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"galleryCPT/internal/models"
	"galleryCPT/internal/repository"
)

type PictureRequest struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Description *string `json:"description"`
}

// GetPictures - список всех картин
func (h *Handlers) GetPictures(w http.ResponseWriter, r *http.Request) {
	pictures, err := h.PictureService.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, pictures, http.StatusOK)
}

// GetPictureByID - информация о картине по id
func (h *Handlers) GetPictureByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Неверный id", http.StatusBadRequest)
		return
	}

	picture, err := h.PictureService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPictureNotFound) {
			WriteError(w, "Картина не найдена", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, picture, http.StatusOK)
}

// CreatePicture - создать новую картину
func (h *Handlers) CreatePicture(w http.ResponseWriter, r *http.Request) {
	var req PictureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поля title и author обязательны", http.StatusBadRequest)
		return
	}

	picture := &models.Picture{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	}

	if err := h.PictureService.Create(r.Context(), picture); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, picture, http.StatusCreated)
}

// UpdatePicture - обновить картину по id, все поля перезаписываются целиком
func (h *Handlers) UpdatePicture(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Неверный id", http.StatusBadRequest)
		return
	}

	var req PictureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поля title и author обязательны", http.StatusBadRequest)
		return
	}

	picture := &models.Picture{
		ID:          id,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
	}

	if err := h.PictureService.Update(r.Context(), picture); err != nil {
		if errors.Is(err, repository.ErrPictureNotFound) {
			WriteError(w, "Картина не найдена", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, picture, http.StatusOK)
}

// DeletePicture - удалить картину по id
func (h *Handlers) DeletePicture(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Неверный id", http.StatusBadRequest)
		return
	}

	if err := h.PictureService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrPictureNotFound) {
			WriteError(w, "Картина не найдена", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Картина успешно удалена"}, http.StatusOK)
}

// UploadPictureImage - загрузить файл изображения картины в хранилище
func (h *Handlers) UploadPictureImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Неверный id", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой или неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Файл image не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	image, err := h.PictureService.UploadImage(r.Context(), id, header.Filename, file, header.Size)
	if err != nil {
		if errors.Is(err, repository.ErrPictureNotFound) {
			WriteError(w, "Картина не найдена", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, image, http.StatusCreated)
}

// GetPictureImages - список изображений картины
func (h *Handlers) GetPictureImages(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Неверный id", http.StatusBadRequest)
		return
	}

	images, err := h.PictureService.GetImages(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPictureNotFound) {
			WriteError(w, "Картина не найдена", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, images, http.StatusOK)
}

// DeletePictureImage - удалить изображение картины
func (h *Handlers) DeletePictureImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Неверный id", http.StatusBadRequest)
		return
	}

	imageID, err := pathID(r, "imageId")
	if err != nil {
		WriteError(w, "Неверный id изображения", http.StatusBadRequest)
		return
	}

	if err := h.PictureService.DeleteImage(r.Context(), id, imageID); err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			WriteError(w, "Изображение не найдено", http.StatusNotFound)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, MessageResponse{Message: "Изображение успешно удалено"}, http.StatusOK)
}
