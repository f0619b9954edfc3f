package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// MessageResponse - тело любого ответа с сообщением, включая ошибки
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError отправляет ошибку в виде {"message": ...}
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(MessageResponse{Message: message})
}

// WriteJSON отправляет успешный ответ
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// pathID достаёт числовой path-параметр из запроса
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
