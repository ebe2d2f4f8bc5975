package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorBody — тело ответа с ошибкой.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON отправляет JSON-ответ с заданным статусом. Заранее выставленный
// Content-Type сохраняется.
func JSON(w http.ResponseWriter, status int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// Error отправляет {"error": message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// Internal отправляет 500 без подробностей.
func Internal(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal error")
}
