package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"galleryCPT/internal/repository"
	"galleryCPT/internal/service"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// Register - регистрация нового пользователя
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные регистрации", http.StatusBadRequest)
		return
	}

	user, accessToken, err := h.AuthService.Register(r.Context(), service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			WriteError(w, "Пользователь с таким email уже существует", http.StatusBadRequest)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := AuthResponse{
		AccessToken: accessToken,
		User: UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}

	WriteJSON(w, response, http.StatusCreated)
}

// Login - вход по email и паролю
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Поля email и password обязательны", http.StatusBadRequest)
		return
	}

	user, accessToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// неизвестный email и неверный пароль отвечают одинаково,
		// остальные ошибки (недоступное хранилище) - это 500
		if errors.Is(err, repository.ErrInvalidCredentials) || errors.Is(err, repository.ErrUserNotFound) {
			WriteError(w, "Неверный email или пароль", http.StatusUnauthorized)
			return
		}
		WriteError(w, "Произошла ошибка при входе", http.StatusInternalServerError)
		return
	}

	response := AuthResponse{
		AccessToken: accessToken,
		User: UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}

	WriteJSON(w, response, http.StatusOK)
}
