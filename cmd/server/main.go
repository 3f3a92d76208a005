package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ekarslan/rolodex/internal/auth"
	"github.com/ekarslan/rolodex/internal/httpapi"
	"github.com/ekarslan/rolodex/internal/middleware"
	"github.com/ekarslan/rolodex/internal/service"
	"github.com/ekarslan/rolodex/internal/storage/sqlite"
	"github.com/ekarslan/rolodex/pkg/logging"
)

const tokenDuration = 24 * time.Hour

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/rolodex.db")
	port := getEnv("PORT", "8080")
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	jwtManager := auth.NewJWTManager(jwtSecret, tokenDuration)
	api := httpapi.New(
		service.NewContactService(store),
		service.NewTagService(store),
		auth.NewPasswordAuthenticator(store),
		jwtManager,
	)

	mux := api.Routes()
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Logging(middleware.Metrics(middleware.CORS(mux)))

	// h2c lets clients speak HTTP/2 without TLS.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := ":" + port
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
