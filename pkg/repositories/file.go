package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cbodonnell/moralmaze/pkg/repositories/models"
)

// FileRepository keeps one JSON snapshot file per profile. The default
// profile maps to the configured path itself; other profiles sit next to
// it as <profile>.json.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %v", err)
	}
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) fileFor(profileID string) string {
	if profileID == "" || profileID == DefaultProfileID {
		return r.path
	}
	return filepath.Join(filepath.Dir(r.path), filepath.Base(profileID)+".json")
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

func (r *FileRepository) SaveSnapshot(ctx context.Context, profileID string, snapshot *models.Snapshot) error {
	data, err := models.Encode(snapshot)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.fileFor(profileID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %v", err)
	}
	return nil
}

func (r *FileRepository) LoadSnapshot(ctx context.Context, profileID string) (*models.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.fileFor(profileID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to read snapshot: %v", err)
	}
	return models.Decode(data)
}

func (r *FileRepository) DeleteSnapshot(ctx context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.fileFor(profileID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot: %v", err)
	}
	return nil
}
