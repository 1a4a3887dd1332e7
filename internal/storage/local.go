package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LocalClient handles local file system storage operations
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a new local storage client rooted at baseDir
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory %s: %w", baseDir, err)
	}

	return &LocalClient{
		baseDir: baseDir,
	}, nil
}

// Close is a no-op for local storage (implements the same interface as GCSClient)
func (l *LocalClient) Close() error {
	return nil
}

// StoreFile stores a file under the base directory
func (l *LocalClient) StoreFile(ctx context.Context, filePath string, fileData []byte) error {
	fullPath := filepath.Join(l.baseDir, filePath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(fullPath, fileData, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}

	return nil
}

// GetFile retrieves a file from local storage
func (l *LocalClient) GetFile(ctx context.Context, filePath string) ([]byte, error) {
	fullPath := filepath.Join(l.baseDir, filePath)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fullPath, err)
	}
	return data, nil
}

// ListSnapshots lists stored dashboard snapshots, newest first
func (l *LocalClient) ListSnapshots(ctx context.Context, limit int) ([]string, error) {
	snapshotsPath := filepath.Join(l.baseDir, "snapshots")

	var snapshotPaths []string

	err := filepath.Walk(snapshotsPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.Name() == "index.html" {
			relPath, _ := filepath.Rel(l.baseDir, path)
			snapshotPaths = append(snapshotPaths, filepath.ToSlash(relPath))
		}
		return nil
	})

	if err != nil {
		// No snapshots stored yet
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to walk snapshots directory: %w", err)
	}

	// Folder names are timestamps, so alphabetical order is chronological
	sort.Sort(sort.Reverse(sort.StringSlice(snapshotPaths)))

	if limit > 0 && limit < len(snapshotPaths) {
		snapshotPaths = snapshotPaths[:limit]
	}

	return snapshotPaths, nil
}
