package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/muchtrie/tugasdrop/internal/config"
	"github.com/muchtrie/tugasdrop/internal/models"
	"github.com/muchtrie/tugasdrop/internal/service"
)

type stubUploadStore struct {
	existing map[string]bool
	created  []*models.Upload
}

func (s *stubUploadStore) ExistsByOriginalFilename(_ context.Context, filename string) (bool, error) {
	return s.existing[filename], nil
}

func (s *stubUploadStore) Create(_ context.Context, upload *models.Upload) error {
	s.created = append(s.created, upload)
	return nil
}

type stubObjectWriter struct {
	putErr error
	keys   []string
}

func (s *stubObjectWriter) Put(_ context.Context, key string, _ io.Reader, _ int64) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	s.keys = append(s.keys, key)
	return "https://bucket.s3.ap-southeast-1.amazonaws.com/" + key, nil
}

type uploadEnv struct {
	handler    *Handler
	uploads    *stubUploadStore
	objects    *stubObjectWriter
	stagingDir string
}

func newUploadEnv(t *testing.T) *uploadEnv {
	t.Helper()
	uploads := &stubUploadStore{existing: map[string]bool{}}
	objects := &stubObjectWriter{}
	cfg := &config.Config{StagingDir: t.TempDir()}
	admission := service.NewAdmission(uploads, objects, time.Second)
	return &uploadEnv{
		handler:    NewHandler(admission, nil, nil, cfg),
		uploads:    uploads,
		objects:    objects,
		stagingDir: cfg.StagingDir,
	}
}

func multipartRequest(t *testing.T, fields map[string]string, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeUpload(t *testing.T, rec *httptest.ResponseRecorder) uploadResponse {
	t.Helper()
	var resp uploadResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func assertStagingEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read staging dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("staging dir holds %d files after request, want 0", len(entries))
	}
}

func TestUpload_Success(t *testing.T) {
	env := newUploadEnv(t)
	req := multipartRequest(t, map[string]string{"nama": "Budi Santoso", "nrp": "5001"}, "tugas1.pdf", "isi tugas")
	rec := httptest.NewRecorder()

	env.handler.Upload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeUpload(t, rec)
	if !resp.Success {
		t.Fatalf("success = false: %s", resp.Message)
	}
	if !resp.PlagiarismChecked {
		t.Error("plagiarismChecked = false, want true")
	}
	if resp.Data == nil || resp.Data.Status != models.StatusOriginal {
		t.Errorf("data = %+v, want status original", resp.Data)
	}
	if len(env.objects.keys) != 1 || env.objects.keys[0] != "Budi_Santoso_5001_tugas1.pdf" {
		t.Errorf("stored keys = %v", env.objects.keys)
	}
	assertStagingEmpty(t, env.stagingDir)
}

func TestUpload_DuplicateFilename(t *testing.T) {
	env := newUploadEnv(t)
	env.uploads.existing["tugas1.pdf"] = true

	req := multipartRequest(t, map[string]string{"nama": "Ani", "nrp": "5002"}, "tugas1.pdf", "isi lain")
	rec := httptest.NewRecorder()

	env.handler.Upload(rec, req)

	// Duplicate rejection is an explained outcome, not an HTTP failure.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	resp := decodeUpload(t, rec)
	if resp.Success {
		t.Fatal("duplicate reported success")
	}
	if !resp.PlagiarismChecked {
		t.Error("plagiarismChecked = false, want true")
	}
	if resp.Data == nil || resp.Data.Status != models.StatusDuplikat {
		t.Errorf("data = %+v, want status duplikat", resp.Data)
	}
	if len(env.objects.keys) != 0 {
		t.Errorf("object written for duplicate: %v", env.objects.keys)
	}
	if len(env.uploads.created) != 0 {
		t.Errorf("row written for duplicate: %d", len(env.uploads.created))
	}
	assertStagingEmpty(t, env.stagingDir)
}

func TestUpload_Validation(t *testing.T) {
	tests := []struct {
		name     string
		fields   map[string]string
		filename string
		wantMsg  string
	}{
		{"missing file", map[string]string{"nama": "Budi", "nrp": "5001"}, "", "No file uploaded"},
		{"missing nama", map[string]string{"nrp": "5001"}, "tugas1.pdf", "Nama dan NRP harus diisi"},
		{"missing nrp", map[string]string{"nama": "Budi"}, "tugas1.pdf", "Nama dan NRP harus diisi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newUploadEnv(t)
			req := multipartRequest(t, tt.fields, tt.filename, "isi")
			rec := httptest.NewRecorder()

			env.handler.Upload(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			resp := decodeUpload(t, rec)
			if resp.Success {
				t.Error("success = true for invalid request")
			}
			if resp.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", resp.Message, tt.wantMsg)
			}
			if len(env.objects.keys) != 0 || len(env.uploads.created) != 0 {
				t.Error("side effects for rejected request")
			}
			assertStagingEmpty(t, env.stagingDir)
		})
	}
}

func TestUpload_StoreFailure(t *testing.T) {
	env := newUploadEnv(t)
	env.objects.putErr = errors.New("s3 timeout")

	req := multipartRequest(t, map[string]string{"nama": "Budi", "nrp": "5001"}, "tugas1.pdf", "isi")
	rec := httptest.NewRecorder()

	env.handler.Upload(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	resp := decodeUpload(t, rec)
	if resp.Success {
		t.Error("success = true for store failure")
	}
	if !resp.PlagiarismChecked {
		t.Error("plagiarismChecked = false; the pre-check did run")
	}
	if len(env.uploads.created) != 0 {
		t.Error("metadata written after object store failure")
	}
	assertStagingEmpty(t, env.stagingDir)
}
