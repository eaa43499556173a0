package web

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"loancam/internal/logger"
)

// NewRouter builds the HTTP router with all routes and request logging.
func NewRouter(h *Handler, log *slog.Logger) *mux.Router {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := mux.NewRouter()
	r.Use(mux.MiddlewareFunc(logger.Middleware(log)))

	r.HandleFunc("/", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/advice", h.Advice).Methods(http.MethodPost)
	r.HandleFunc("/applications", h.Applications).Methods(http.MethodGet)
	r.HandleFunc("/api/applications", h.APIApplications).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)

	return r
}
