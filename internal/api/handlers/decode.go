package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// DecodeJSON декодирует тело запроса в указанную структуру
func DecodeJSON(r *http.Request, out interface{}) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}
