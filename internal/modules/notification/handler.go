package notification

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/modules/auth"
)

// Handler exposes notification HTTP endpoints. The /me routes resolve
// the recipient from the session token; an explicit user_id query
// parameter is honored as the trusted fallback.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/notifications", func(r chi.Router) {
		r.Post("/{id}/read", h.markRead) // POST /api/v1/notifications/{id}/read
		r.Group(func(r chi.Router) {
			r.Use(auth.CurrentUser)
			r.Get("/me", h.listMine)                // GET  /api/v1/notifications/me
			r.Get("/me/unread-count", h.unreadMine) // GET  /api/v1/notifications/me/unread-count
			r.Post("/me/read-all", h.readAllMine)   // POST /api/v1/notifications/me/read-all
		})
	})
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid notification id"})
		return
	}
	h.service.MarkRead(id)
	respond(w, http.StatusOK, map[string]string{"status": "read"})
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.recipient(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, h.service.ListFor(userID))
}

func (h *Handler) unreadMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.recipient(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, map[string]int{"unread": h.service.UnreadCount(userID)})
}

func (h *Handler) readAllMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.recipient(w, r)
	if !ok {
		return
	}
	h.service.MarkAllRead(userID)
	respond(w, http.StatusOK, map[string]string{"status": "read"})
}

func (h *Handler) recipient(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if u, ok := auth.FromContext(r.Context()); ok {
		return u.ID, true
	}
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			return id, true
		}
	}
	respond(w, http.StatusUnauthorized, map[string]string{"error": "no session user"})
	return uuid.Nil, false
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
