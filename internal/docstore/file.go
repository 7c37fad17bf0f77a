package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// FileStore keeps each document as an indented JSON file under a directory.
// Keys may contain "/" to nest documents in subdirectories.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a FileStore rooted at dir
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	return &FileStore{
		dir:    dir,
		logger: logger,
	}
}

func (fs *FileStore) path(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty document key")
	}
	for _, part := range strings.Split(key, "/") {
		if part == "" || part == "." || part == ".." {
			return "", fmt.Errorf("invalid document key: %q", key)
		}
	}
	return filepath.Join(fs.dir, filepath.FromSlash(key)+".json"), nil
}

// Get loads the document stored under key
func (fs *FileStore) Get(_ context.Context, key string) (Document, error) {
	path, err := fs.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document file %s: %w", path, err)
	}

	fs.logger.Debug("Document loaded",
		zap.String("key", key),
		zap.Int("fields", len(doc)))

	return doc, nil
}

// Set writes doc under key, replacing any previous document
func (fs *FileStore) Set(_ context.Context, key string, doc Document) error {
	path, err := fs.path(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document file: %w", err)
	}

	fs.logger.Info("Document saved",
		zap.String("key", key),
		zap.Int("fields", len(doc)))

	return nil
}
