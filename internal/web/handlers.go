// Package web serves the HTML advisory pages and the JSON API.
package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"loancam/internal/advisor"
	"loancam/internal/database"
)

const defaultListLimit = 5

// Handler bundles the dependencies of the HTTP handlers.
type Handler struct {
	store database.Store
	orch  *advisor.Orchestrator
	log   *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(store database.Store, orch *advisor.Orchestrator, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Handler{
		store: store,
		orch:  orch,
		log:   log.With("component", "web"),
	}
}

// pageData feeds the main page template.
type pageData struct {
	Categories   []advisor.Category
	Selected     advisor.Category
	Changes      string
	Advice       string
	Warning      string
	Applications []database.LoanApplication
}

// Index renders the advice form with recent applications.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pageData{Selected: advisor.CategoryPersonal})
}

// Advice handles the advice form submission.
func (h *Handler) Advice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	rawChanges := r.FormValue("changes")
	category, err := advisor.ParseCategory(r.FormValue("category"))
	if err != nil {
		category = advisor.CategoryPersonal
	}

	changes := strings.Split(rawChanges, "\n")
	advice := h.orch.ProduceAdvice(r.Context(), changes, category)

	data := pageData{
		Selected: category,
		Changes:  rawChanges,
	}
	if advice == advisor.MsgProvideChanges {
		data.Warning = advice
	} else {
		data.Advice = advice
	}
	h.renderPage(w, r, data)
}

// Applications renders the application table on its own page.
func (h *Handler) Applications(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, pageData{Selected: advisor.CategoryPersonal, Changes: ""})
}

// APIApplications returns loan applications as JSON.
func (h *Handler) APIApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.store.ListApplications(r.Context(), listLimit(r))
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to list applications", "error", err)
		http.Error(w, "Failed to list applications", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(apps); err != nil {
		h.log.ErrorContext(r.Context(), "Failed to encode applications", "error", err)
	}
}

// Healthz reports whether the database is reachable.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		h.log.ErrorContext(r.Context(), "Health check failed", "error", err)
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("ok"))
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, data pageData) {
	data.Categories = advisor.Categories()

	apps, err := h.store.ListApplications(r.Context(), listLimit(r))
	if err != nil {
		h.log.ErrorContext(r.Context(), "Failed to list applications for page", "error", err)
		// The advice surface still works without the table.
	}
	data.Applications = apps

	if err := pageTmpl.Execute(w, data); err != nil {
		h.log.ErrorContext(r.Context(), "Failed to render page", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func listLimit(r *http.Request) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaultListLimit
}
