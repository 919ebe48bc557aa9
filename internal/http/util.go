package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"officedir-data/internal/repository"
)

const maxBodyBytes = 10 << 20 // matches the 10mb import payload limit

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the sentinel taxonomy to HTTP statuses; everything else
// is an internal error.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, repository.ErrUnauthorized):
		status = http.StatusUnauthorized
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func readBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
}

func readBodyJSON(r *http.Request, out any) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// pathTail returns the path segment after prefix, or "" when the request
// does not address a single item.
func pathTail(r *http.Request, prefix string) string {
	tail := strings.TrimPrefix(r.URL.Path, prefix)
	if tail == "" || strings.Contains(tail, "/") {
		return ""
	}
	return tail
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}
