package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"galleryCPT/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Storage interface {
	UploadImage(ctx context.Context, pictureID int64, fileName string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
	GetImageURL(ctx context.Context, objectName string) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	config *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации MinIO клиента: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания bucket: %w", err)
		}
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

func (m *MinIOClient) UploadImage(ctx context.Context, pictureID int64, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := fmt.Sprintf("pictures/%d/%d/%02d/%s%s",
		pictureID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.config.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	imageURL, err := m.GetImageURL(ctx, objectName)
	if err != nil {
		return "", "", err
	}

	return objectName, imageURL, nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}

func (m *MinIOClient) GetImageURL(ctx context.Context, objectName string) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.config.MinIO.BucketName, objectName, m.config.MinIO.URLExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации ссылки на изображение: %w", err)
	}
	return url.String(), nil
}
