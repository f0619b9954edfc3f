package main

import (
	"fmt"
	"log"
	"net/http"

	"galleryCPT/cmd/app"
	"galleryCPT/internal/config"
	handlers "galleryCPT/internal/handler"
	"galleryCPT/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	// setting up routes
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)

	api.HandleFunc("/author", handler.GetAuthors).Methods(http.MethodGet)
	api.HandleFunc("/author/{id}", handler.GetAuthorByID).Methods(http.MethodGet)
	api.HandleFunc("/author", handler.CreateAuthor).Methods(http.MethodPost)
	api.HandleFunc("/author/{id}", handler.UpdateAuthor).Methods(http.MethodPut)
	api.HandleFunc("/author/{id}", handler.DeleteAuthor).Methods(http.MethodDelete)

	api.HandleFunc("/picture", handler.GetPictures).Methods(http.MethodGet)
	api.HandleFunc("/picture/{id}", handler.GetPictureByID).Methods(http.MethodGet)
	api.HandleFunc("/picture", handler.CreatePicture).Methods(http.MethodPost)
	api.HandleFunc("/picture/{id}", handler.UpdatePicture).Methods(http.MethodPut)
	api.HandleFunc("/picture/{id}", handler.DeletePicture).Methods(http.MethodDelete)

	api.HandleFunc("/picture/{id}/images", handler.UploadPictureImage).Methods(http.MethodPost)
	api.HandleFunc("/picture/{id}/images", handler.GetPictureImages).Methods(http.MethodGet)
	api.HandleFunc("/picture/{id}/images/{imageId}", handler.DeletePictureImage).Methods(http.MethodDelete)

	api.HandleFunc("/favorite/add", handler.AddToFavorites).Methods(http.MethodPost)
	api.HandleFunc("/favorite/remove", handler.RemoveFromFavorites).Methods(http.MethodDelete)

	api.HandleFunc("/join", handler.CreateJoinLink).Methods(http.MethodPost)
	api.HandleFunc("/join/favorite-pictures/{authorName}", handler.GetUsersWithFavoritePicturesByAuthor).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
