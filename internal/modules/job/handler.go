package job

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

// Handler exposes service job HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/jobs", func(r chi.Router) {
		r.Post("/", h.register)                // POST /api/v1/jobs
		r.Get("/", h.list)                     // GET  /api/v1/jobs
		r.Get("/track", h.track)               // GET  /api/v1/jobs/track?q=
		r.Get("/search", h.search)             // GET  /api/v1/jobs/search?q=
		r.Get("/stats", h.stats)               // GET  /api/v1/jobs/stats
		r.Get("/{id}", h.get)                  // GET  /api/v1/jobs/{id}
		r.Post("/{id}/assign", h.assign)       // POST /api/v1/jobs/{id}/assign
		r.Post("/{id}/status", h.updateStatus) // POST /api/v1/jobs/{id}/status
		r.Post("/{id}/parts", h.attachPart)    // POST /api/v1/jobs/{id}/parts
		r.Post("/{id}/complete", h.complete)   // POST /api/v1/jobs/{id}/complete
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		respond(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors(err)})
		return
	}
	j, err := h.service.Register(req)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, j)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.List())
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	j, err := h.service.Get(id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, j)
}

func (h *Handler) track(w http.ResponseWriter, r *http.Request) {
	j, err := h.service.Track(r.URL.Query().Get("q"))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, j)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Search(r.URL.Query().Get("q")))
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Stats())
}

type assignRequest struct {
	MechanicID string `json:"mechanic_id" validate:"required,uuid"`
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		respond(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors(err)})
		return
	}
	j, err := h.service.Assign(id, uuid.MustParse(req.MechanicID))
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, j)
}

type statusRequest struct {
	Status model.JobStatus `json:"status" validate:"required"`
	Note   string          `json:"note"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	j, err := h.service.UpdateStatus(id, req.Status, req.Note)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, j)
}

type attachPartRequest struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
}

func (h *Handler) attachPart(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req attachPartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		respond(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors(err)})
		return
	}
	if !h.service.AttachPart(id, uuid.MustParse(req.ItemID)) {
		respond(w, http.StatusUnprocessableEntity, map[string]string{"error": "part unavailable or job unknown"})
		return
	}
	j, err := h.service.Get(id)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusOK, j)
}

type completeRequest struct {
	Total int64 `json:"total"`
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	var req completeRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}
	t, err := h.service.Complete(id, req.Total)
	if err != nil {
		respondErr(w, err)
		return
	}
	respond(w, http.StatusCreated, t)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid job id"})
		return uuid.Nil, false
	}
	return id, true
}

func respondErr(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		code = http.StatusNotFound
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
