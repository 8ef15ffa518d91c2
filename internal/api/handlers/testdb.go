package handlers

import (
	"log"
	"net/http"

	"github.com/muchtrie/tugasdrop/internal/models"
	"github.com/muchtrie/tugasdrop/internal/repositories"
	"github.com/muchtrie/tugasdrop/internal/utils"
)

type testDBResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	TableExists bool   `json:"tableExists,omitempty"`
	Error       string `json:"error,omitempty"`
}

// GET /test-db
// TestDB godoc
// @Summary Verify database connectivity
// @Description Pings the database and lazily creates the uploads table if it is missing.
// @Tags Diagnostics
// @Produce json
// @Success 200 {object} testDBResponse
// @Failure 500 {object} testDBResponse
// @Router /test-db [get]
func (h *Handler) TestDB(w http.ResponseWriter, r *http.Request) {
	if err := repositories.Ping(r.Context(), h.db); err != nil {
		log.Printf("database connection error: %v", err)
		utils.JSONResponse(w, http.StatusInternalServerError, testDBResponse{
			Success: false,
			Message: "Database connection failed",
			Error:   err.Error(),
		})
		return
	}

	tableExists := h.db.WithContext(r.Context()).Migrator().HasTable(&models.Upload{})
	if !tableExists {
		if err := h.db.WithContext(r.Context()).AutoMigrate(&models.Upload{}); err != nil {
			utils.JSONResponse(w, http.StatusInternalServerError, testDBResponse{
				Success: false,
				Message: "Failed to create uploads table",
				Error:   err.Error(),
			})
			return
		}
	}

	utils.JSONResponse(w, http.StatusOK, testDBResponse{
		Success:     true,
		Message:     "Database connection successful",
		TableExists: tableExists,
	})
}
