package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/muchtrie/tugasdrop/internal/api"
	"github.com/muchtrie/tugasdrop/internal/api/handlers"
	"github.com/muchtrie/tugasdrop/internal/config"
	"github.com/muchtrie/tugasdrop/internal/repositories"
	"github.com/muchtrie/tugasdrop/internal/service"
)

// @title TugasDrop API
// @version 1.0
// @description Student assignment upload service with duplicate-filename rejection.
// @BasePath /
func main() {
	cfg := config.Load()

	db, err := repositories.ConnectDatabase(cfg.DBURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to database")

	objectStore := repositories.NewObjectStore(cfg.S3)
	uploadRepo := repositories.NewUploadRepository(db)

	admission := service.NewAdmission(uploadRepo, objectStore, cfg.StoreTimeout)
	listing := service.NewListing(uploadRepo, objectStore, cfg.StoreTimeout)

	handler := handlers.NewHandler(admission, listing, db, &cfg)
	router := api.SetupRouter(&cfg, handler)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
		// Read timeout is sized for multipart uploads; the others keep
		// slow clients from pinning connections.
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting TugasDrop server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
