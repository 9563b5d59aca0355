package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

type LocalStore struct {
	root string
}

// NewLocalStore resolves root against the working directory when it is relative.
func NewLocalStore(root string) (*LocalStore, error) {
	if !filepath.IsAbs(root) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		root = filepath.Join(cwd, root)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) path(dir, name string) string {
	return filepath.Join(s.root, dir, name)
}

func (s *LocalStore) Save(_ context.Context, dir, name string, src io.Reader) error {
	dirPath := filepath.Join(s.root, dir)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dirPath, err)
	}

	out, err := os.Create(filepath.Join(dirPath, name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return out.Sync()
}

func (s *LocalStore) Open(_ context.Context, dir, name string) (*Object, error) {
	p := s.path(dir, name)
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, ErrObjectNotFound
	}

	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return &Object{Body: f, Size: info.Size()}, nil
}

func (s *LocalStore) Exists(_ context.Context, dir, name string) (bool, error) {
	info, err := os.Stat(s.path(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

func (s *LocalStore) Delete(_ context.Context, dir, name string) error {
	if err := os.Remove(s.path(dir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

func (s *LocalStore) DeleteDir(_ context.Context, dir string) error {
	dirPath := filepath.Join(s.root, dir)
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read dir %s: %w", dirPath, err)
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if err := os.Remove(filepath.Join(dirPath, entry.Name())); err != nil {
			log.Warnw("delete photo", "path", filepath.Join(dirPath, entry.Name()), "error", err)
		}
	}

	if err := os.Remove(dirPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove dir %s: %w", dirPath, err)
	}
	return nil
}
