// Package classes serves the status document and the class-schedule stub.
// Class schedules live in the admin frontend; the API answers with an empty
// list so the dashboard's fetch cycle keeps working.
package classes

import (
	"net/http"
	"studio/config"
	"studio/infras/otel"
	"studio/shared/constant"
	"studio/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		cfg:  cfg,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Status)
	router.Get("/api/classes", handler.GetClasses)
}

// Status reports that the API is up and which collections it serves.
func (handler *Handler) Status(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Status")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, map[string]any{
		"status":  "online",
		"message": handler.cfg.App.Name,
		"version": "1.0.0",
		"endpoints": map[string]string{
			"reservations": "/api/reservations",
			"borrows":      "/api/borrows",
			"classes":      "/api/classes",
		},
	})
}

// GetClasses always returns an empty list.
func (handler *Handler) GetClasses(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClasses")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, []any{})
}
