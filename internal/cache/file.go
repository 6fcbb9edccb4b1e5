package cache

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Cache is a small key/value store used for shopping lists, meal plans and
// recipes. Keys may contain slashes; implementations treat them as opaque.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	List(prefix string) ([]string, error)
}

type FileCache struct {
	Dir string
}

var _ Cache = (*FileCache)(nil)

func NewFileCache(dir string) *FileCache {
	return &FileCache{Dir: dir}
}

func (fc *FileCache) Get(key string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(fc.Dir, key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (fc *FileCache) Set(key, value string) error {
	filePath := filepath.Join(fc.Dir, key)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, []byte(value), 0644)
}

func (fc *FileCache) Delete(key string) error {
	err := os.Remove(filepath.Join(fc.Dir, key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// List returns the keys under prefix, with the prefix trimmed, sorted.
func (fc *FileCache) List(prefix string) ([]string, error) {
	keys := make([]string, 0)
	err := filepath.WalkDir(fc.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(fc.Dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, strings.TrimPrefix(key, prefix))
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}
