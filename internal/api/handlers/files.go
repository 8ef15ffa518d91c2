package handlers

import (
	"log"
	"net/http"

	"github.com/muchtrie/tugasdrop/internal/utils"
)

type listingError struct {
	Error string `json:"error"`
}

// GET /api/files
// ListFiles godoc
// @Summary List uploaded assignments
// @Description Returns all uploads newest first from the database, or a reconstructed view from the object store if the database is down.
// @Tags Files
// @Produce json
// @Success 200 {array} service.FileView
// @Failure 500 {object} listingError
// @Router /api/files [get]
func (h *Handler) ListFiles(w http.ResponseWriter, r *http.Request) {
	listing, err := h.listing.List(r.Context())
	if err != nil {
		log.Printf("listing error: %v", err)
		utils.JSONResponse(w, http.StatusInternalServerError, listingError{
			Error: "Error retrieving files from both database and S3",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, listing.Files)
}
