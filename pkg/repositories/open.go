package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Open builds the repository named by url. Supported schemes are file://,
// sqlite:// and postgres:// (or postgresql://). Database migrations are
// read from the scheme's subdirectory of migrationsDir.
func Open(ctx context.Context, url string, migrationsDir string) (Repository, error) {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return nil, fmt.Errorf("save url %q has no scheme", url)
	}
	switch scheme {
	case "file":
		if rest == "" {
			return nil, fmt.Errorf("save url %q has no path", url)
		}
		return NewFileRepository(rest)
	case "sqlite":
		if rest == "" {
			return nil, fmt.Errorf("save url %q has no path", url)
		}
		return NewSQLiteRepository(ctx, rest, filepath.Join(migrationsDir, "sqlite"))
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, url, filepath.Join(migrationsDir, "postgresql"))
	default:
		return nil, fmt.Errorf("unsupported save url scheme %q", scheme)
	}
}
