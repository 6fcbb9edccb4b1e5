package cache

import (
	"log/slog"
	"os"
)

// MakeCache picks a backend from the environment: CACHE_BACKEND=memory for
// an in-process map, otherwise files under CACHE_DIR (default "cache").
func MakeCache() (Cache, error) {
	if os.Getenv("CACHE_BACKEND") == "memory" {
		slog.Info("using in-memory cache")
		return NewInMemoryCache(), nil
	}

	dir := os.Getenv("CACHE_DIR")
	if dir == "" {
		dir = "cache"
	}
	slog.Info("using file cache", "dir", dir)
	return NewFileCache(dir), nil
}
