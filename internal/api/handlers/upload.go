package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/muchtrie/tugasdrop/internal/service"
	"github.com/muchtrie/tugasdrop/internal/utils"
)

const maxUploadSize = 100 << 20 // 100 MB

type uploadData struct {
	Nama     string `json:"nama"`
	NRP      string `json:"nrp"`
	FileName string `json:"fileName"`
	Location string `json:"location,omitempty"`
	Status   string `json:"status"`
}

type uploadResponse struct {
	Success           bool        `json:"success"`
	Message           string      `json:"message"`
	Data              *uploadData `json:"data,omitempty"`
	PlagiarismChecked bool        `json:"plagiarismChecked"`
	PlagiarismError   string      `json:"plagiarismError,omitempty"`
}

// POST /upload
// Upload godoc
// @Summary Submit an assignment file
// @Description Accepts a file plus nama and nrp; rejects any filename already submitted by anyone.
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Assignment file"
// @Param nama formData string true "Submitter name"
// @Param nrp formData string true "Submitter identifier"
// @Success 200 {object} uploadResponse
// @Failure 400 {object} uploadResponse
// @Failure 500 {object} uploadResponse
// @Router /upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, uploadResponse{
			Success: false,
			Message: "Invalid file upload form",
		})
		return
	}

	nama := r.FormValue("nama")
	nrp := r.FormValue("nrp")

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, uploadResponse{
			Success: false,
			Message: "No file uploaded",
		})
		return
	}
	defer file.Close()

	if nama == "" || nrp == "" {
		utils.JSONResponse(w, http.StatusBadRequest, uploadResponse{
			Success: false,
			Message: "Nama dan NRP harus diisi",
		})
		return
	}

	staged, err := service.Stage(h.stagingDir, file)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, uploadResponse{
			Success: false,
			Message: "Error saat mengunggah file: " + err.Error(),
		})
		return
	}
	// The staged copy is gone when this request finishes, whichever
	// branch below is taken. A cleanup failure is logged, never returned.
	defer func() {
		if err := staged.Discard(); err != nil {
			log.Printf("failed to remove staged file %s: %v", staged.Path(), err)
		}
	}()

	result, err := h.admission.Admit(r.Context(), service.Submission{
		Nama:     nama,
		NRP:      nrp,
		Filename: header.Filename,
		File:     staged,
	})
	if err != nil {
		h.writeAdmissionError(w, err)
		return
	}

	data := &uploadData{
		Nama:     result.Nama,
		NRP:      result.NRP,
		FileName: result.FileName,
		Location: result.Location,
		Status:   result.Status,
	}
	utils.JSONResponse(w, http.StatusOK, uploadResponse{
		Success:           result.Admitted,
		Message:           result.Message,
		Data:              data,
		PlagiarismChecked: true,
	})
}

// writeAdmissionError maps the admission error taxonomy onto HTTP
// responses. Duplicate rejections never come through here; they are
// ordinary results.
func (h *Handler) writeAdmissionError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		utils.JSONResponse(w, http.StatusBadRequest, uploadResponse{
			Success: false,
			Message: validationErr.Message,
		})
		return
	}

	var checkErr *service.DuplicateCheckError
	if errors.As(err, &checkErr) {
		log.Printf("duplicate check error: %v", err)
		utils.JSONResponse(w, http.StatusInternalServerError, uploadResponse{
			Success:         false,
			Message:         "Error saat mengunggah file: " + checkErr.Err.Error(),
			PlagiarismError: checkErr.Err.Error(),
		})
		return
	}

	// StoreWriteError and MetadataWriteError both reach here: the
	// pre-check already ran, so plagiarismChecked is true. A metadata
	// failure additionally means an orphaned object in the bucket.
	log.Printf("upload error: %v", err)
	utils.JSONResponse(w, http.StatusInternalServerError, uploadResponse{
		Success:           false,
		Message:           "Error saat mengunggah file: " + err.Error(),
		PlagiarismChecked: true,
	})
}
