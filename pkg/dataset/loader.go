package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sr31bu/avocado-predictor/pkg/avocado"
	"github.com/Sr31bu/avocado-predictor/pkg/config"
)

// Loader supplies the full training set in memory.
type Loader interface {
	Load(ctx context.Context) ([]avocado.Example, error)
	Close() error
}

// NewLoader returns the backend selected by cfg. root is the project
// directory the file backend resolves its data directory against.
func NewLoader(ctx context.Context, cfg config.DatasetConfig, root string) (Loader, error) {
	switch cfg.Backend {
	case "", "file":
		return &FileLoader{Root: root, Dir: cfg.File.Dir, Name: cfg.File.Name}, nil
	case "redis":
		store, err := NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown dataset backend: %s", cfg.Backend)
}

// FileLoader reads a CSV dataset stored at Root/Dir/Name.
type FileLoader struct {
	Root string
	Dir  string
	Name string
}

// Path returns the resolved dataset file path.
func (fl *FileLoader) Path() string {
	return filepath.Join(fl.dataDir(), fl.Name)
}

func (fl *FileLoader) dataDir() string {
	root := fl.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, fl.Dir)
}

// Load parses the whole dataset file.
func (fl *FileLoader) Load(ctx context.Context) ([]avocado.Example, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := fl.dataDir()
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, &MissingDataError{Path: dir}
	}

	path := fl.Path()
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, &MissingDataError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	examples, err := ParseRecords(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return examples, nil
}

// Close is a no-op for files.
func (fl *FileLoader) Close() error {
	return nil
}
