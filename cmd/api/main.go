package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/satriamaulana/bengkel-backend/internal/config"
	"github.com/satriamaulana/bengkel-backend/internal/modules/assist"
	"github.com/satriamaulana/bengkel-backend/internal/modules/auth"
	"github.com/satriamaulana/bengkel-backend/internal/modules/inventory"
	"github.com/satriamaulana/bengkel-backend/internal/modules/job"
	"github.com/satriamaulana/bengkel-backend/internal/modules/notification"
	"github.com/satriamaulana/bengkel-backend/internal/modules/pos"
	"github.com/satriamaulana/bengkel-backend/internal/modules/user"
	"github.com/satriamaulana/bengkel-backend/internal/store"
)

func main() {
	// Running without a .env file is fine; everything has defaults.
	_ = godotenv.Load()
	log := config.NewLogger()

	st := store.New()
	st.Seed()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userService := user.NewService(st)
	user.NewHandler(userService).RegisterRoutes(router)

	authService := auth.NewService(st)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Inventory ───────────────────────────────────────────
	inventoryService := inventory.NewService(st, log)
	inventory.NewHandler(inventoryService).RegisterRoutes(router)

	// ── Service jobs ────────────────────────────────────────
	jobService := job.NewService(st, st, st, st, log)
	job.NewHandler(jobService).RegisterRoutes(router)

	// ── POS & ledger ────────────────────────────────────────
	posService := pos.NewService(st, log)
	pos.NewHandler(posService).RegisterRoutes(router)

	// ── Notifications ───────────────────────────────────────
	notificationService := notification.NewService(st)
	notification.NewHandler(notificationService).RegisterRoutes(router)

	// ── Diagnostic assistant ────────────────────────────────
	advisor := assist.NewGeminiAdvisor(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_BASE_URL"))
	assistService := assist.NewService(advisor, assistTimeout(), log)
	assist.NewHandler(assistService).RegisterRoutes(router)

	// ── Start server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("bengkel API server starting")
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func assistTimeout() time.Duration {
	if raw := os.Getenv("ASSIST_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return assist.DefaultTimeout
}
