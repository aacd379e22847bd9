package pos

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/satriamaulana/bengkel-backend/internal/store"
)

var validate = validator.New()

// Handler exposes POS HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/pos", func(r chi.Router) {
		r.Post("/checkout", h.checkout)        // POST /api/v1/pos/checkout
		r.Get("/transactions", h.transactions) // GET  /api/v1/pos/transactions
	})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	// Empty carts never reach the checkout operation.
	if err := validate.Struct(req); err != nil {
		respond(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors(err)})
		return
	}
	t, err := h.service.Checkout(req)
	if err != nil {
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
		return
	}
	respond(w, http.StatusCreated, t)
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.ListTransactions())
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
