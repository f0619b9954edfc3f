package handlers

import (
	"net/http"

	"galleryCPT/internal/config"
	"galleryCPT/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	AuthorService   service.AuthorService
	PictureService  service.PictureService
	FavoriteService service.FavoriteService
	JoinService     service.JoinService
	AuthService     service.AuthService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthorService:   services.Author,
		PictureService:  services.Picture,
		FavoriteService: services.Favorite,
		JoinService:     services.Join,
		AuthService:     services.Auth,
		Cfg:             config,
		Validate:        validator.New(),
	}
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
