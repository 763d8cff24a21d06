package quarx

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/quarx/internal/crypto"
	"github.com/JaimeStill/quarx/internal/menus"
	"github.com/JaimeStill/quarx/internal/modules"
	"github.com/JaimeStill/quarx/internal/widgets"
	"github.com/JaimeStill/quarx/pkg/storage"
	"github.com/JaimeStill/quarx/pkg/web"
)

var (
	ErrInvalidUUID   = errors.New("invalid uuid")
	ErrAssetNotFound = errors.New("asset not found")
)

// MapHTTPStatus maps service errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUUID):
		return http.StatusBadRequest
	case errors.Is(err, ErrAssetNotFound),
		errors.Is(err, crypto.ErrInvalidToken),
		errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrInvalidKey),
		errors.Is(err, modules.ErrInvalidKey):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, storage.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, web.ErrViewNotFound):
		return http.StatusBadRequest
	}
	if status := menus.MapHTTPStatus(err); status != http.StatusInternalServerError {
		return status
	}
	return widgets.MapHTTPStatus(err)
}
