package photo

import (
	"Recipe-Book/domain"
	"Recipe-Book/internal/utils/storage"
	"Recipe-Book/pkg/recipe"
	"context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"mime/multipart"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

const defaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

// PhotoService is implemented once for recipe photos and once for step
// photos. Both keep files in the owning recipe's directory.
type PhotoService interface {
	UploadPhoto(ctx context.Context, target domain.PhotoTarget, file *multipart.FileHeader) (string, error)
	GetPhoto(ctx context.Context, recipeID uint, filename string) (*storage.Object, error)
	GetPhotoFilenames(ctx context.Context, target domain.PhotoTarget) ([]string, error)
	DeletePhoto(ctx context.Context, recipeID uint, filename string) error
	DeleteAllPhotos(ctx context.Context, target domain.PhotoTarget) error
	GetContentType(filename string) string
}

// photoBase holds what both variants share.
type photoBase struct {
	recipeService recipe.RecipeService
	store         storage.PhotoStore
}

func recipeDir(recipeID uint) string {
	return strconv.FormatUint(uint64(recipeID), 10)
}

// validateUpload returns the lower-cased extension of an acceptable file.
func validateUpload(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", domain.ErrEmptyFile
	}
	if file.Filename == "" {
		return "", domain.ErrMissingFilename
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains(storage.AllowImage, ext) {
		return "", domain.ErrInvalidImageFormat
	}
	return ext, nil
}

// validateFilename rejects names that would leave the recipe directory.
func validateFilename(filename string) error {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) {
		return domain.ErrInvalidFilename
	}
	return nil
}

func (b *photoBase) write(ctx context.Context, recipeID uint, filename string, file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := b.store.Save(ctx, recipeDir(recipeID), filename, src); err != nil {
		log.Errorw("store photo", "recipe_id", recipeID, "filename", filename, "error", err)
		return err
	}
	return nil
}

func (b *photoBase) GetPhoto(ctx context.Context, recipeID uint, filename string) (*storage.Object, error) {
	if recipeID == 0 {
		return nil, domain.ErrMissingRecipeID
	}
	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	obj, err := b.store.Open(ctx, recipeDir(recipeID), filename)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}
	return obj, nil
}

// removeFile deletes recipeID/filename after checking that it exists.
func (b *photoBase) removeFile(ctx context.Context, recipeID uint, filename string) error {
	if recipeID == 0 {
		return domain.ErrMissingRecipeID
	}
	if err := validateFilename(filename); err != nil {
		return err
	}

	dir := recipeDir(recipeID)
	exists, err := b.store.Exists(ctx, dir, filename)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrPhotoNotFound
	}

	if err := b.store.Delete(ctx, dir, filename); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return domain.ErrPhotoNotFound
		}
		log.Errorw("delete photo", "recipe_id", recipeID, "filename", filename, "error", err)
		return err
	}
	return nil
}

func (b *photoBase) GetContentType(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return defaultContentType
}

func rejectUpload(target domain.PhotoTarget, err error) error {
	log.Warnw("photo upload rejected", "recipe_id", target.RecipeID, "step_id", target.StepID, "error", err)
	return err
}
