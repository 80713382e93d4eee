package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cbodonnell/moralmaze/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string, migrations string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	if err := migrate(ctx, db, migrations); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

// migrate runs every file in the migrations directory in name order.
func migrate(ctx context.Context, db *sql.DB, migrations string) error {
	dir, err := os.ReadDir(migrations)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(dir, func(i, j int) bool { return dir[i].Name() < dir[j].Name() })

	for _, entry := range dir {
		if entry.IsDir() {
			continue
		}

		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}

		if _, err := db.ExecContext(ctx, string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, profileID string, snapshot *models.Snapshot) error {
	blob, err := marshalBlob(snapshot)
	if err != nil {
		return err
	}

	q := `
	INSERT OR REPLACE INTO snapshots (profile_id, version, saved_at, data)
	VALUES (?, ?, ?, ?);
	`
	_, err = r.db.ExecContext(ctx, q, profileID, snapshot.Version, snapshot.SavedAt.UTC().Format(time.RFC3339Nano), blob)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadSnapshot(ctx context.Context, profileID string) (*models.Snapshot, error) {
	q := `
	SELECT data FROM snapshots WHERE profile_id = ?;
	`
	var blob []byte
	if err := r.db.QueryRowContext(ctx, q, profileID).Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan snapshot: %v", err)
	}

	return unmarshalBlob(blob)
}

func (r *SQLiteRepository) DeleteSnapshot(ctx context.Context, profileID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE profile_id = ?;`, profileID); err != nil {
		return fmt.Errorf("failed to delete snapshot: %v", err)
	}
	return nil
}
