package photo

import (
	"Recipe-Book/domain"
	"Recipe-Book/entities"
	"Recipe-Book/internal/utils/storage"
	"Recipe-Book/pkg/recipe"
	"context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"mime/multipart"
)

type stepPhotoService struct {
	photoBase
}

// NewStepPhotoService keeps at most one photo per step. Files share the
// recipe directory and carry the step id as a filename prefix.
func NewStepPhotoService(recipeService recipe.RecipeService, store storage.PhotoStore) PhotoService {
	return &stepPhotoService{
		photoBase: photoBase{recipeService: recipeService, store: store},
	}
}

func (s *stepPhotoService) findStep(ctx context.Context, target domain.PhotoTarget) (*entities.Recipe, *entities.RecipeStep, error) {
	if target.RecipeID == 0 {
		return nil, nil, domain.ErrMissingRecipeID
	}
	if target.StepID == 0 {
		return nil, nil, domain.ErrMissingStepID
	}

	r, err := s.recipeService.GetRecipeByID(ctx, target.RecipeID)
	if err != nil {
		return nil, nil, err
	}

	step := r.FindStep(target.StepID)
	if step == nil {
		return nil, nil, domain.ErrStepNotFound
	}
	return r, step, nil
}

func (s *stepPhotoService) UploadPhoto(ctx context.Context, target domain.PhotoTarget, file *multipart.FileHeader) (string, error) {
	r, step, err := s.findStep(ctx, target)
	if err != nil {
		return "", rejectUpload(target, err)
	}

	ext, err := validateUpload(file)
	if err != nil {
		return "", rejectUpload(target, err)
	}

	filename := fmt.Sprintf("%d_%s%s", step.ID, uuid.NewString(), ext)
	if err := s.write(ctx, r.ID, filename, file); err != nil {
		return "", err
	}

	previous := step.ImageURL
	step.ImageURL = filename
	if _, err := s.recipeService.SaveRecipe(ctx, r); err != nil {
		return "", err
	}

	if previous != "" && validateFilename(previous) == nil {
		if err := s.store.Delete(ctx, recipeDir(r.ID), previous); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			log.Warnw("remove replaced step photo", "recipe_id", r.ID, "step_id", step.ID, "filename", previous, "error", err)
		}
	}

	log.Infow("step photo uploaded", "recipe_id", r.ID, "step_id", step.ID, "filename", filename)
	return filename, nil
}

func (s *stepPhotoService) GetPhotoFilenames(ctx context.Context, target domain.PhotoTarget) ([]string, error) {
	_, step, err := s.findStep(ctx, target)
	if err != nil {
		return nil, err
	}

	if step.ImageURL == "" {
		return []string{}, nil
	}
	return []string{step.ImageURL}, nil
}

// DeletePhoto removes the file and clears whichever step of the recipe
// currently points at it.
func (s *stepPhotoService) DeletePhoto(ctx context.Context, recipeID uint, filename string) error {
	if err := s.removeFile(ctx, recipeID, filename); err != nil {
		return err
	}

	r, err := s.recipeService.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return nil
		}
		return err
	}

	for _, step := range r.Steps {
		if step.ImageURL == filename {
			step.ImageURL = ""
			_, err := s.recipeService.SaveRecipe(ctx, r)
			return err
		}
	}
	return nil
}

// DeleteAllPhotos removes only the step's own photo; other files in the
// recipe directory are left alone.
func (s *stepPhotoService) DeleteAllPhotos(ctx context.Context, target domain.PhotoTarget) error {
	r, step, err := s.findStep(ctx, target)
	if err != nil {
		return err
	}

	if step.ImageURL == "" {
		return nil
	}

	if validateFilename(step.ImageURL) == nil {
		if err := s.store.Delete(ctx, recipeDir(r.ID), step.ImageURL); err != nil && !errors.Is(err, storage.ErrObjectNotFound) {
			log.Errorw("delete step photo", "recipe_id", r.ID, "step_id", step.ID, "error", err)
			return err
		}
	}

	step.ImageURL = ""
	_, err = s.recipeService.SaveRecipe(ctx, r)
	return err
}
