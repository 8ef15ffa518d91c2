package api

import (
	"fmt"
	"net/http"

	_ "github.com/muchtrie/tugasdrop/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/muchtrie/tugasdrop/internal/api/handlers"
	"github.com/muchtrie/tugasdrop/internal/api/middleware"
	"github.com/muchtrie/tugasdrop/internal/config"
	"github.com/muchtrie/tugasdrop/internal/web"
	"github.com/rs/cors"
)

func SetupRouter(cfg *config.Config, h *handlers.Handler) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	// Static pages
	mux.HandleFunc("GET /{$}", web.Index)
	mux.HandleFunc("GET /files", web.ListFiles)

	// API
	mux.HandleFunc("GET /api/files", h.ListFiles)
	mux.HandleFunc("POST /upload", h.Upload)
	mux.HandleFunc("GET /test-db", h.TestDB)

	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	handler = middleware.RequestID(handler)
	return handler
}
