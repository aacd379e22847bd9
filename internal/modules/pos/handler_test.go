package pos

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/satriamaulana/bengkel-backend/internal/model"
	"github.com/satriamaulana/bengkel-backend/internal/store"
)

func newTestRouter(t *testing.T) (*chi.Mux, *store.Store) {
	t.Helper()
	st := store.New()
	log := logrus.New()
	log.SetOutput(io.Discard)
	router := chi.NewRouter()
	NewHandler(NewService(st, log)).RegisterRoutes(router)
	return router, st
}

func TestCheckoutHandlerRejectsEmptyCart(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/checkout", strings.NewReader(`{"items":[]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", rec.Code)
	}
}

func TestCheckoutHandlerHappyPath(t *testing.T) {
	router, st := newTestRouter(t)
	item, _ := st.CreateItem(model.InventoryItem{Name: "Teh Botol", Dept: model.DeptFB, Stock: 5, Price: 1000})

	body := `{"items":[{"item_id":"` + item.ID.String() + `","qty":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"total":2000`) {
		t.Fatalf("expected total 2000 in response: %s", rec.Body.String())
	}
}

func TestCheckoutHandlerInsufficientStock(t *testing.T) {
	router, st := newTestRouter(t)
	item, _ := st.CreateItem(model.InventoryItem{Name: "Roti O", Dept: model.DeptFB, Stock: 1, Price: 12000})

	body := `{"items":[{"item_id":"` + item.ID.String() + `","qty":5}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pos/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
