package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/store"
)

// Handler exposes user HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/users", func(r chi.Router) {
		r.Get("/", h.list)                                  // GET /api/v1/users
		r.Get("/mechanics/available", h.availableMechanics) // GET /api/v1/users/mechanics/available
		r.Get("/{id}", h.get)                               // GET /api/v1/users/{id}
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.List())
}

func (h *Handler) availableMechanics(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.AvailableMechanics())
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}
	u, err := h.service.Get(id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, store.ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, u)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
