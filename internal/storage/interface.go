package storage

import (
	"context"
)

// Client defines the interface for persistent storage. It carries both
// the favorites snapshot (a single small JSON object) and exported
// dashboard snapshots (HTML plus chart images under timestamped folders).
type Client interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a file at the specified path
	StoreFile(ctx context.Context, filePath string, fileData []byte) error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListSnapshots lists stored dashboard snapshots, newest first
	ListSnapshots(ctx context.Context, limit int) ([]string, error)
}
