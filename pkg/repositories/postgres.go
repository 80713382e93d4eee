package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/cbodonnell/moralmaze/pkg/log"
	"github.com/cbodonnell/moralmaze/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and runs the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string, migrations string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	dir, err := os.ReadDir(migrations)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}
	sort.Slice(dir, func(i, j int) bool { return dir[i].Name() < dir[j].Name() })

	for _, entry := range dir {
		if entry.IsDir() {
			continue
		}
		migrationPath := filepath.Join(migrations, entry.Name())
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		if _, err := conn.Exec(ctx, string(migration)); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %s: %v", migrationPath, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveSnapshot(ctx context.Context, profileID string, snapshot *models.Snapshot) error {
	blob, err := marshalBlob(snapshot)
	if err != nil {
		return err
	}

	q := `
	INSERT INTO snapshots (profile_id, version, saved_at, data) VALUES ($1, $2, $3, $4)
	ON CONFLICT (profile_id) DO UPDATE SET version = $2, saved_at = $3, data = $4;
	`
	if _, err := r.conn.Exec(ctx, q, profileID, snapshot.Version, snapshot.SavedAt, blob); err != nil {
		return fmt.Errorf("failed to upsert snapshot: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadSnapshot(ctx context.Context, profileID string) (*models.Snapshot, error) {
	var blob []byte
	err := r.conn.QueryRow(ctx, "SELECT data FROM snapshots WHERE profile_id = $1", profileID).Scan(&blob)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to query snapshot: %v", err)
	}

	return unmarshalBlob(blob)
}

func (r *PostgresRepository) DeleteSnapshot(ctx context.Context, profileID string) error {
	if _, err := r.conn.Exec(ctx, "DELETE FROM snapshots WHERE profile_id = $1", profileID); err != nil {
		return fmt.Errorf("failed to delete snapshot: %v", err)
	}
	return nil
}
