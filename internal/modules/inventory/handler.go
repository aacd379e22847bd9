package inventory

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
	"github.com/satriamaulana/bengkel-backend/internal/store"
)

var validate = validator.New()

// Handler exposes inventory HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/inventory", func(r chi.Router) {
		r.Get("/", h.list)                     // GET    /api/v1/inventory
		r.Post("/", h.create)                  // POST   /api/v1/inventory
		r.Get("/{id}", h.get)                  // GET    /api/v1/inventory/{id}
		r.Patch("/{id}", h.update)             // PATCH  /api/v1/inventory/{id}
		r.Delete("/{id}", h.delete)            // DELETE /api/v1/inventory/{id}
		r.Post("/{id}/increment", h.increment) // POST   /api/v1/inventory/{id}/increment
		r.Post("/{id}/decrement", h.decrement) // POST   /api/v1/inventory/{id}/decrement
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.List())
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	item, err := h.service.Get(id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, item)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		respond(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors(err)})
		return
	}
	item, err := h.service.Create(req)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, item)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var patch model.InventoryItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	item, err := h.service.Update(id, patch)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, item)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type stockRequest struct {
	Qty int `json:"qty" validate:"required,min=1"`
}

func (h *Handler) increment(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.service.Increment)
}

func (h *Handler) decrement(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, h.service.Decrement)
}

func (h *Handler) adjust(w http.ResponseWriter, r *http.Request, op func(uuid.UUID, int) (*model.InventoryItem, error)) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req stockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		respond(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors(err)})
		return
	}
	item, err := op(id, req.Qty)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, item)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid item id"})
		return uuid.Nil, false
	}
	return id, true
}

func respondErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, store.ErrInsufficientStock):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrValidation):
		code = http.StatusBadRequest
	}
	respond(w, code, map[string]string{"error": err.Error()})
}

func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, ve := range verrs {
			out[ve.Field()] = ve.Tag()
		}
	}
	return out
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
