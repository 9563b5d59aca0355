// Package storage keeps photo bytes. A "dir" is one recipe's folder
// (photos-root/<recipeId> on disk, the <recipeId>/ key prefix on S3).
package storage

import (
	"context"
	"errors"
	"io"
)

var (
	AllowImage = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

	ErrObjectNotFound = errors.New("object not found")
)

type (
	PhotoStore interface {
		// Save writes src as dir/name, replacing any existing object.
		Save(ctx context.Context, dir, name string, src io.Reader) error
		// Open fails with ErrObjectNotFound unless dir/name is a regular object.
		Open(ctx context.Context, dir, name string) (*Object, error)
		Exists(ctx context.Context, dir, name string) (bool, error)
		Delete(ctx context.Context, dir, name string) error
		// DeleteDir removes every object in dir and then dir itself. A missing
		// dir is not an error; single object failures are skipped.
		DeleteDir(ctx context.Context, dir string) error
	}

	Object struct {
		Body io.ReadCloser
		Size int64
	}
)
