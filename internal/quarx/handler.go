package quarx

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/JaimeStill/quarx/pkg/handlers"
	"github.com/JaimeStill/quarx/pkg/routes"
	"github.com/JaimeStill/quarx/pkg/storage"
	"github.com/google/uuid"
)

// HandlerConfig holds delivery settings for the asset route.
type HandlerConfig struct {
	MaxAssetSize int64
	CacheMaxAge  time.Duration
}

// Handler exposes the service over HTTP.
type Handler struct {
	svc    *Service
	cfg    HandlerConfig
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(svc *Service, cfg HandlerConfig, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		cfg:    cfg,
		logger: logger.With("handler", "quarx"),
	}
}

// Routes returns the asset and render route groups.
func (h *Handler) Routes() []routes.Group {
	return []routes.Group{
		{
			Prefix:      "/asset",
			Description: "Encrypted asset delivery",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/{path}/{contentType}", Handler: h.Asset},
				{Method: "GET", Pattern: "/{path}/{contentType}/{$}", Handler: h.Asset},
			},
		},
		{
			Prefix:      "/render",
			Description: "HTML fragments",
			Routes: []routes.Route{
				{Method: "GET", Pattern: "/breadcrumbs", Handler: h.Breadcrumbs},
				{Method: "GET", Pattern: "/packages", Handler: h.Packages},
				{Method: "GET", Pattern: "/notification", Handler: h.Notification},
			},
			Children: []routes.Group{
				{
					Prefix: "/menus",
					Routes: []routes.Route{
						{Method: "GET", Pattern: "/{uuid}", Handler: h.Menu},
					},
				},
				{
					Prefix: "/widgets",
					Routes: []routes.Route{
						{Method: "GET", Pattern: "/{uuid}", Handler: h.Widget},
					},
				},
			},
		},
	}
}

// Asset decrypts the path and content type segments and serves the file.
func (h *Handler) Asset(w http.ResponseWriter, r *http.Request) {
	path, err := h.svc.crypto.Decrypt(r.PathValue("path"))
	if err != nil {
		h.respondError(w, fmt.Errorf("%w: path token", ErrAssetNotFound))
		return
	}
	contentType, err := h.svc.crypto.Decrypt(r.PathValue("contentType"))
	if err != nil {
		h.respondError(w, fmt.Errorf("%w: content type token", ErrAssetNotFound))
		return
	}

	var obj *storage.Object
	if r.URL.Query().Get("isModule") == "true" {
		obj, err = h.openModuleAsset(path)
	} else {
		obj, err = h.svc.assets.Open(r.Context(), path)
	}
	if err != nil {
		h.respondError(w, err)
		return
	}
	defer obj.Close()

	if contentType != NullContentType && contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	if h.cfg.CacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.cfg.CacheMaxAge.Seconds())))
	}

	http.ServeContent(w, r, obj.Name, obj.ModTime, obj)
}

func (h *Handler) openModuleAsset(path string) (*storage.Object, error) {
	root, err := filepath.Abs(h.svc.modules.ModuleDirectory())
	if err != nil {
		return nil, fmt.Errorf("resolve module directory: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, storage.ErrInvalidKey
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return nil, storage.ErrInvalidKey
	}

	full, err := storage.Resolve(root, rel)
	if err != nil {
		return nil, err
	}
	return storage.OpenFile(full, h.cfg.MaxAssetSize)
}

// Menu renders a menu fragment. The optional view query selects a view.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("uuid"))
	if err != nil {
		h.respondError(w, fmt.Errorf("%w: %v", ErrInvalidUUID, err))
		return
	}

	out, err := h.svc.Menu(r.Context(), id, r.URL.Query().Get("view"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	handlers.RespondHTML(w, http.StatusOK, out)
}

// Widget renders a widget fragment.
func (h *Handler) Widget(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("uuid"))
	if err != nil {
		h.respondError(w, fmt.Errorf("%w: %v", ErrInvalidUUID, err))
		return
	}

	out, err := h.svc.Widget(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	handlers.RespondHTML(w, http.StatusOK, out)
}

// Breadcrumbs renders repeated crumb query values. A value of the form
// "label|url" is a link; anything else is a flat label.
func (h *Handler) Breadcrumbs(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()["crumb"]
	crumbs := make([]Crumb, 0, len(values))
	for _, v := range values {
		if label, url, ok := strings.Cut(v, "|"); ok {
			crumbs = append(crumbs, Link(label, url))
			continue
		}
		crumbs = append(crumbs, Label(v))
	}
	handlers.RespondHTML(w, http.StatusOK, h.svc.Breadcrumbs(crumbs))
}

// Packages renders the composite package menus.
func (h *Handler) Packages(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.PackageMenus(nil)
	if err != nil {
		h.respondError(w, err)
		return
	}
	handlers.RespondHTML(w, http.StatusOK, out)
}

// Notification renders and clears the pending flash notification.
func (h *Handler) Notification(w http.ResponseWriter, r *http.Request) {
	handlers.RespondHTML(w, http.StatusOK, h.svc.PendingNotification(w, r))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
}
