package app

import (
	"log"

	"galleryCPT/internal/config"
	"galleryCPT/internal/database"
	"galleryCPT/internal/repository"
	"galleryCPT/internal/service"
	"galleryCPT/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
