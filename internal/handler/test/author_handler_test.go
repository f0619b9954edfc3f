package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"galleryCPT/internal/models"
	"galleryCPT/internal/repository"
)

func TestGetAuthorByID_Success(t *testing.T) {
	mockAuthorService := new(MockAuthorService)
	handler := createTestHandler()
	handler.AuthorService = mockAuthorService

	mockAuthorService.On("GetByID", mock.Anything, int64(1)).
		Return(&models.Author{ID: 1, Name: "Рембрандт"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/author/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rr := httptest.NewRecorder()

	handler.GetAuthorByID(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var author models.Author
	err := json.Unmarshal(rr.Body.Bytes(), &author)
	assert.NoError(t, err)
	assert.Equal(t, "Рембрандт", author.Name)
}

func TestGetAuthorByID_NotFound(t *testing.T) {
	mockAuthorService := new(MockAuthorService)
	handler := createTestHandler()
	handler.AuthorService = mockAuthorService

	mockAuthorService.On("GetByID", mock.Anything, int64(42)).
		Return(nil, repository.ErrAuthorNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/author/42", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rr := httptest.NewRecorder()

	handler.GetAuthorByID(rr, req)

	assertJSONMessage(t, rr, http.StatusNotFound, "Автор не найден")
}

func TestGetAuthorByID_InvalidID(t *testing.T) {
	handler := createTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/author/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})
	rr := httptest.NewRecorder()

	handler.GetAuthorByID(rr, req)

	assertJSONMessage(t, rr, http.StatusBadRequest, "Неверный id")
}

func TestCreateAuthor_Success(t *testing.T) {
	mockAuthorService := new(MockAuthorService)
	handler := createTestHandler()
	handler.AuthorService = mockAuthorService

	mockAuthorService.On("Create", mock.Anything, "Рембрандт").
		Return(&models.Author{ID: 1, Name: "Рембрандт"}, nil)

	body, _ := json.Marshal(map[string]string{"name": "Рембрандт"})
	req := httptest.NewRequest(http.MethodPost, "/api/author", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	handler.CreateAuthor(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var author models.Author
	err := json.Unmarshal(rr.Body.Bytes(), &author)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), author.ID)
}

func TestCreateAuthor_MissingName(t *testing.T) {
	mockAuthorService := new(MockAuthorService)
	handler := createTestHandler()
	handler.AuthorService = mockAuthorService

	body, _ := json.Marshal(map[string]string{})
	req := httptest.NewRequest(http.MethodPost, "/api/author", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()

	handler.CreateAuthor(rr, req)

	assertJSONMessage(t, rr, http.StatusBadRequest, "Поле name обязательно")
	mockAuthorService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateAuthor_NotFound(t *testing.T) {
	mockAuthorService := new(MockAuthorService)
	handler := createTestHandler()
	handler.AuthorService = mockAuthorService

	mockAuthorService.On("Update", mock.Anything, int64(42), "Вермеер").
		Return(nil, repository.ErrAuthorNotFound)

	body, _ := json.Marshal(map[string]string{"name": "Вермеер"})
	req := httptest.NewRequest(http.MethodPut, "/api/author/42", bytes.NewBuffer(body))
	req = mux.SetURLVars(req, map[string]string{"id": "42"})
	rr := httptest.NewRecorder()

	handler.UpdateAuthor(rr, req)

	assertJSONMessage(t, rr, http.StatusNotFound, "Автор не найден")
}

func TestDeleteAuthor_Success(t *testing.T) {
	mockAuthorService := new(MockAuthorService)
	handler := createTestHandler()
	handler.AuthorService = mockAuthorService

	mockAuthorService.On("Delete", mock.Anything, int64(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/author/1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "1"})
	rr := httptest.NewRecorder()

	handler.DeleteAuthor(rr, req)

	assertJSONMessage(t, rr, http.StatusOK, "Автор успешно удален")
}
