package storage

import (
	"testing"
	"time"
)

func TestSnapshotFolderPath(t *testing.T) {
	ts := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	got := SnapshotFolderPath(ts)
	want := "snapshots/2026-08-29_15-04-05"
	if got != want {
		t.Errorf("SnapshotFolderPath = %q, want %q", got, want)
	}
}

func TestGetContentType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"snapshots/2026-08-29_15-04-05/index.html", "text/html"},
		{"snapshots/2026-08-29_15-04-05/forecast.png", "image/png"},
		{"favorites.json", "application/json"},
		{"styles.css", "text/css"},
		{"app.js", "application/javascript"},
		{"notes.txt", "text/plain"},
		{"archive.bin", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := GetContentType(tt.path); got != tt.want {
			t.Errorf("GetContentType(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
