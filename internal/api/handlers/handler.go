package handlers

import (
	"context"

	"github.com/muchtrie/tugasdrop/internal/config"
	"github.com/muchtrie/tugasdrop/internal/service"
	"gorm.io/gorm"
)

// Admitter decides upload admission.
type Admitter interface {
	Admit(ctx context.Context, sub service.Submission) (*service.Result, error)
}

// Lister produces the file listing.
type Lister interface {
	List(ctx context.Context) (*service.FileListing, error)
}

// Handler carries the wired services for all API endpoints.
type Handler struct {
	admission  Admitter
	listing    Lister
	db         *gorm.DB
	stagingDir string
}

func NewHandler(admission Admitter, listing Lister, db *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{
		admission:  admission,
		listing:    listing,
		db:         db,
		stagingDir: cfg.StagingDir,
	}
}
