package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/muchtrie/tugasdrop/internal/models"
	"gorm.io/gorm"
)

// ErrDuplicateFilename reports that an original-status row with the same
// original_filename already exists. It is produced by the partial unique
// index, not by the pre-check query, so concurrent submissions of the
// same filename cannot both get through.
var ErrDuplicateFilename = errors.New("original filename already uploaded")

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

func (r *UploadRepository) Create(ctx context.Context, upload *models.Upload) error {
	err := r.db.WithContext(ctx).Create(upload).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateFilename
	}
	return err
}

// ExistsByOriginalFilename reports whether any row (by any submitter)
// already carries the given original filename.
func (r *UploadRepository) ExistsByOriginalFilename(ctx context.Context, filename string) (bool, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Upload{}).
		Where("original_filename = ?", filename).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, fmt.Errorf("query uploads by filename: %w", err)
	}
	return len(ids) > 0, nil
}

// ListNewestFirst returns every upload ordered by upload_date descending,
// the canonical listing order.
func (r *UploadRepository) ListNewestFirst(ctx context.Context) ([]models.Upload, error) {
	var uploads []models.Upload
	err := r.db.WithContext(ctx).
		Order("upload_date DESC").
		Find(&uploads).Error
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	return uploads, nil
}
