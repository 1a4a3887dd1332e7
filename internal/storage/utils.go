package storage

import (
	"strings"
	"time"
)

// FavoritesObject is the fixed path of the persisted favorites snapshot
const FavoritesObject = "favorites.json"

// SnapshotFolderPath generates the storage folder for a dashboard
// snapshot taken at the given time
func SnapshotFolderPath(timestamp time.Time) string {
	return "snapshots/" + timestamp.Format("2006-01-02_15-04-05")
}

// GetContentType returns the appropriate content type for a file based on its extension
func GetContentType(filePath string) string {
	if strings.HasSuffix(filePath, ".html") {
		return "text/html"
	} else if strings.HasSuffix(filePath, ".png") {
		return "image/png"
	} else if strings.HasSuffix(filePath, ".json") {
		return "application/json"
	} else if strings.HasSuffix(filePath, ".css") {
		return "text/css"
	} else if strings.HasSuffix(filePath, ".js") {
		return "application/javascript"
	} else if strings.HasSuffix(filePath, ".txt") {
		return "text/plain"
	}
	return "application/octet-stream"
}
