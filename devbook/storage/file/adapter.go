// Package file persists snapshots as a single JSON file, replaced
// atomically on save.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/devbook/devbook/devbook/storage"
)

type Adapter struct {
	Path string
}

func New(path string) *Adapter {
	return &Adapter{Path: path}
}

func (a *Adapter) Backend() storage.Backend {
	return storage.BackendFile
}

func (a *Adapter) Ref() string {
	return a.Path
}

func (a *Adapter) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(a.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte("{}"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", a.Path, err)
	}
	if len(data) == 0 {
		return []byte("{}"), nil
	}
	return data, nil
}

func (a *Adapter) Save(_ context.Context, dump []byte) error {
	dir := filepath.Dir(a.Path)
	tmp, err := os.CreateTemp(dir, ".devbook-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(dump); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), a.Path); err != nil {
		return fmt.Errorf("replace snapshot %s: %w", a.Path, err)
	}
	return nil
}

func (a *Adapter) Close() error {
	return nil
}
