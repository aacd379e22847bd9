package assist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Handler exposes the diagnostic assistant endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/v1/assist/diagnose", h.diagnose)
}

type diagnoseRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

func (h *Handler) diagnose(w http.ResponseWriter, r *http.Request) {
	var req diagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		respond(w, http.StatusBadRequest, map[string]interface{}{"errors": fieldErrors(err)})
		return
	}
	answer := h.service.Diagnose(r.Context(), req.Prompt)
	respond(w, http.StatusOK, map[string]string{"answer": answer})
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
