package utils

import (
	"testing"
	"time"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero bytes", 0, "0 Bytes"},
		{"under one KB", 512, "512 Bytes"},
		{"exactly one KB", 1024, "1 KB"},
		{"one and a half KB", 1536, "1.5 KB"},
		{"two KB", 2048, "2 KB"},
		{"fractional MB", 1572864, "1.5 MB"},
		{"one GB", 1 << 30, "1 GB"},
		{"rounds to two decimals", 1126, "1.1 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFileSize(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 9, 5, 30, 0, time.UTC)
	got := FormatDate(ts)
	want := "07/03/2025 09:05"
	if got != want {
		t.Errorf("FormatDate() = %q, want %q", got, want)
	}
}
