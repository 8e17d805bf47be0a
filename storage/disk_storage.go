package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

type diskStorage struct {
	fs      afero.Fs
	BaseDir string
}

// NewDiskStorage reads documents below baseDir. Keys are slash separated paths
// relative to baseDir.
func NewDiskStorage(fsys afero.Fs, baseDir string) *diskStorage {
	return &diskStorage{fs: fsys, BaseDir: baseDir}
}

func (ds *diskStorage) GetKeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var matched []string

	err := afero.Walk(ds.fs, ds.BaseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(ds.BaseDir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, "listing %s", ds.BaseDir)
	}

	sort.Strings(matched)
	return matched, nil
}

func (ds *diskStorage) Read(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	filePath := filepath.Join(ds.BaseDir, filepath.FromSlash(key))
	data, err := afero.ReadFile(ds.fs, filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrDoesNotExist, "key %q", key)
		}
		return nil, errors.Wrapf(err, "reading %s", filePath)
	}
	return data, nil
}
