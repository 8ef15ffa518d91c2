package models

import (
	"time"
)

const (
	// StatusOriginal marks the first accepted upload for a filename.
	StatusOriginal = "original"
	// StatusDuplikat marks a rejected resubmission of an already-used filename.
	StatusDuplikat = "duplikat"
)

// Upload is one accepted submission. Rows are written once and never
// updated or deleted. The partial unique index on original_filename is
// what actually enforces the one-original-per-filename rule; the handler
// pre-check is only an optimization.
type Upload struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Nama             string    `json:"nama" gorm:"column:nama;size:255;not null"`
	NRP              string    `json:"nrp" gorm:"column:nrp;size:50;not null"`
	OriginalFilename string    `json:"originalFilename" gorm:"column:original_filename;size:255;not null;index:idx_uploads_original_unique,unique,where:status = 'original'"`
	S3Filename       string    `json:"s3Filename" gorm:"column:s3_filename;size:255;not null"`
	S3URL            string    `json:"s3Url" gorm:"column:s3_url;type:text;not null"`
	FileSize         int64     `json:"fileSize" gorm:"column:file_size"`
	UploadDate       time.Time `json:"uploadDate" gorm:"column:upload_date;autoCreateTime"`
	Status           string    `json:"status" gorm:"column:status;size:16;default:original"`
}

func (Upload) TableName() string {
	return "uploads"
}
