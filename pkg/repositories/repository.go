package repositories

import (
	"context"

	"github.com/cbodonnell/moralmaze/pkg/repositories/models"
)

// Repository stores one snapshot per profile.
type Repository interface {
	Close(ctx context.Context) error
	SaveSnapshot(ctx context.Context, profileID string, snapshot *models.Snapshot) error
	// LoadSnapshot returns *ErrNotFound when the profile has no snapshot.
	LoadSnapshot(ctx context.Context, profileID string) (*models.Snapshot, error)
	DeleteSnapshot(ctx context.Context, profileID string) error
}
