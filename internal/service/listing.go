package service

import (
	"context"
	"fmt"
	"time"

	"github.com/muchtrie/tugasdrop/internal/models"
	"github.com/muchtrie/tugasdrop/internal/repositories"
	"github.com/muchtrie/tugasdrop/internal/utils"
)

// Source tags which store a listing was built from.
type Source int

const (
	// SourcePrimary is the metadata store, ordered by upload date.
	SourcePrimary Source = iota
	// SourceFallback is the object store, used only when the primary
	// query itself fails. Submitter fields are unrecoverable there.
	SourceFallback
)

// FileView is one row of the listing as served to clients. ID and Status
// are absent in fallback views.
type FileView struct {
	ID           uint   `json:"id,omitempty"`
	Name         string `json:"name"`
	OriginalName string `json:"originalName"`
	Nama         string `json:"nama"`
	NRP          string `json:"nrp"`
	Size         string `json:"size"`
	UploadDate   string `json:"uploadDate"`
	URL          string `json:"url"`
	Status       string `json:"status,omitempty"`
}

// FileListing is the tagged result of a listing query: files from
// exactly one source, never a mix.
type FileListing struct {
	Source Source
	Files  []FileView
}

// UploadLister is the primary read path.
type UploadLister interface {
	ListNewestFirst(ctx context.Context) ([]models.Upload, error)
}

// ObjectLister is the fallback read path.
type ObjectLister interface {
	List(ctx context.Context) ([]repositories.StoredObject, error)
	PublicURL(key string) string
}

// Listing serves the file list, preferring the metadata store and
// reconstructing a lower-fidelity view from the object store when the
// database is unreachable.
type Listing struct {
	uploads UploadLister
	objects ObjectLister
	timeout time.Duration
}

func NewListing(uploads UploadLister, objects ObjectLister, timeout time.Duration) *Listing {
	return &Listing{uploads: uploads, objects: objects, timeout: timeout}
}

// List queries the metadata store and falls back to the object store
// only on query failure; an empty table is a valid empty listing. If
// both stores fail the two errors are reported together.
func (l *Listing) List(ctx context.Context) (*FileListing, error) {
	dbCtx, cancel := context.WithTimeout(ctx, l.timeout)
	uploads, dbErr := l.uploads.ListNewestFirst(dbCtx)
	cancel()
	if dbErr == nil {
		files := make([]FileView, 0, len(uploads))
		for _, u := range uploads {
			status := u.Status
			if status == "" {
				status = models.StatusOriginal
			}
			files = append(files, FileView{
				ID:           u.ID,
				Name:         u.S3Filename,
				OriginalName: u.OriginalFilename,
				Nama:         u.Nama,
				NRP:          u.NRP,
				Size:         utils.FormatFileSize(u.FileSize),
				UploadDate:   utils.FormatDate(u.UploadDate),
				URL:          u.S3URL,
				Status:       status,
			})
		}
		return &FileListing{Source: SourcePrimary, Files: files}, nil
	}

	objCtx, cancel := context.WithTimeout(ctx, l.timeout)
	objects, objErr := l.objects.List(objCtx)
	cancel()
	if objErr != nil {
		return nil, fmt.Errorf("retrieving files from both database and object store: %w; %w", dbErr, objErr)
	}

	files := make([]FileView, 0, len(objects))
	for _, obj := range objects {
		files = append(files, FileView{
			Name:         obj.Key,
			OriginalName: obj.Key,
			Nama:         "Unknown",
			NRP:          "Unknown",
			Size:         utils.FormatFileSize(obj.Size),
			UploadDate:   utils.FormatDate(obj.LastModified),
			URL:          l.objects.PublicURL(obj.Key),
		})
	}
	return &FileListing{Source: SourceFallback, Files: files}, nil
}
