package pages

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("page not found")
	ErrDuplicate = errors.New("page url already exists")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
