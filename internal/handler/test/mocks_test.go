package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"galleryCPT/internal/models"
	"galleryCPT/internal/service"
)

type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) GetAll(ctx context.Context) ([]models.Author, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Author), args.Error(1)
}

func (m *MockAuthorService) GetByID(ctx context.Context, id int64) (*models.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorService) Create(ctx context.Context, name string) (*models.Author, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorService) Update(ctx context.Context, id int64, name string) (*models.Author, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

func (m *MockAuthorService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPictureService struct {
	mock.Mock
}

func (m *MockPictureService) GetAll(ctx context.Context) ([]models.Picture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Picture), args.Error(1)
}

func (m *MockPictureService) GetByID(ctx context.Context, id int64) (*models.Picture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Picture), args.Error(1)
}

func (m *MockPictureService) Create(ctx context.Context, picture *models.Picture) error {
	args := m.Called(ctx, picture)
	return args.Error(0)
}

func (m *MockPictureService) Update(ctx context.Context, picture *models.Picture) error {
	args := m.Called(ctx, picture)
	return args.Error(0)
}

func (m *MockPictureService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPictureService) UploadImage(ctx context.Context, pictureID int64, fileName string, file io.Reader, size int64) (*models.Image, error) {
	args := m.Called(ctx, pictureID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockPictureService) GetImages(ctx context.Context, pictureID int64) ([]models.Image, error) {
	args := m.Called(ctx, pictureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Image), args.Error(1)
}

func (m *MockPictureService) DeleteImage(ctx context.Context, pictureID, imageID int64) error {
	args := m.Called(ctx, pictureID, imageID)
	return args.Error(0)
}

type MockFavoriteService struct {
	mock.Mock
}

func (m *MockFavoriteService) AddToFavorites(ctx context.Context, userID, pictureID int64) (*models.Favorite, error) {
	args := m.Called(ctx, userID, pictureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockFavoriteService) RemoveFromFavorites(ctx context.Context, userID, pictureID int64) error {
	args := m.Called(ctx, userID, pictureID)
	return args.Error(0)
}

type MockJoinService struct {
	mock.Mock
}

func (m *MockJoinService) CreateLink(ctx context.Context, authorID, pictureID int64) (*models.TypeSink, error) {
	args := m.Called(ctx, authorID, pictureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TypeSink), args.Error(1)
}

func (m *MockJoinService) GetUsersWithFavoritePicturesByAuthor(ctx context.Context, authorName string) ([]models.UserWithFavorites, error) {
	args := m.Called(ctx, authorName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserWithFavorites), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}
