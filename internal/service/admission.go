package service

import (
	"context"
	"errors"
	"io"
	"regexp"
	"time"

	"github.com/muchtrie/tugasdrop/internal/models"
	"github.com/muchtrie/tugasdrop/internal/repositories"
)

// UploadStore is the metadata side of admission.
type UploadStore interface {
	ExistsByOriginalFilename(ctx context.Context, filename string) (bool, error)
	Create(ctx context.Context, upload *models.Upload) error
}

// ObjectWriter is the object-store side of admission.
type ObjectWriter interface {
	Put(ctx context.Context, key string, body io.Reader, size int64) (string, error)
}

// Submission is one upload attempt: the submitter fields from the form
// plus the staged payload.
type Submission struct {
	Nama     string
	NRP      string
	Filename string
	File     *StagedFile
}

// Result is the admission outcome handed back to the HTTP layer.
type Result struct {
	Admitted bool
	Status   string
	Nama     string
	NRP      string
	FileName string
	Location string
	Message  string
}

// Admission decides whether a submission is stored as original or
// rejected as duplikat, and performs the object and metadata writes for
// admitted files.
type Admission struct {
	uploads UploadStore
	objects ObjectWriter
	timeout time.Duration
}

func NewAdmission(uploads UploadStore, objects ObjectWriter, timeout time.Duration) *Admission {
	return &Admission{uploads: uploads, objects: objects, timeout: timeout}
}

var namaSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DeriveStorageKey computes the object key for a submission:
// sanitized nama, nrp and the original filename joined by underscores.
// Pure: identical inputs always give the identical key.
func DeriveStorageKey(nama, nrp, filename string) string {
	return namaSanitizer.ReplaceAllString(nama, "_") + "_" + nrp + "_" + filename
}

// Admit runs the admission sequence: validate, duplicate pre-check,
// object write, metadata insert. A duplicate is a rejection Result with
// nil error, not a failure. The caller owns sub.File and discards it
// whatever happens here.
func (a *Admission) Admit(ctx context.Context, sub Submission) (*Result, error) {
	if sub.File == nil {
		return nil, &ValidationError{Message: "No file uploaded"}
	}
	if sub.Nama == "" || sub.NRP == "" {
		return nil, &ValidationError{Message: "Nama dan NRP harus diisi"}
	}

	// Pre-check so obvious duplicates never reach the object store. The
	// unique index on uploads is still the real guard; see Create below.
	checkCtx, cancel := context.WithTimeout(ctx, a.timeout)
	exists, err := a.uploads.ExistsByOriginalFilename(checkCtx, sub.Filename)
	cancel()
	if err != nil {
		return nil, &DuplicateCheckError{Err: err}
	}
	if exists {
		return a.rejectDuplicate(sub), nil
	}

	key := DeriveStorageKey(sub.Nama, sub.NRP, sub.Filename)

	body, err := sub.File.Open()
	if err != nil {
		return nil, &StoreWriteError{Err: err}
	}
	defer body.Close()

	putCtx, cancel := context.WithTimeout(ctx, a.timeout)
	location, err := a.objects.Put(putCtx, key, body, sub.File.Size())
	cancel()
	if err != nil {
		return nil, &StoreWriteError{Err: err}
	}

	upload := &models.Upload{
		Nama:             sub.Nama,
		NRP:              sub.NRP,
		OriginalFilename: sub.Filename,
		S3Filename:       key,
		S3URL:            location,
		FileSize:         sub.File.Size(),
		Status:           models.StatusOriginal,
	}

	insertCtx, cancel := context.WithTimeout(ctx, a.timeout)
	err = a.uploads.Create(insertCtx, upload)
	cancel()
	if err != nil {
		// A concurrent submission won the race past the pre-check; the
		// constraint violation is the authoritative duplicate verdict.
		if errors.Is(err, repositories.ErrDuplicateFilename) {
			return a.rejectDuplicate(sub), nil
		}
		return nil, &MetadataWriteError{Err: err}
	}

	return &Result{
		Admitted: true,
		Status:   models.StatusOriginal,
		Nama:     sub.Nama,
		NRP:      sub.NRP,
		FileName: sub.Filename,
		Location: location,
		Message:  "Tugas berhasil diupload!",
	}, nil
}

func (a *Admission) rejectDuplicate(sub Submission) *Result {
	return &Result{
		Admitted: false,
		Status:   models.StatusDuplikat,
		Nama:     sub.Nama,
		NRP:      sub.NRP,
		FileName: sub.Filename,
		Message:  "File dengan nama yang sama sudah pernah diupload oleh mahasiswa lain. Upload dibatalkan. Status: Duplikat.",
	}
}
