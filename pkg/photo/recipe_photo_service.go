package photo

import (
	"Recipe-Book/domain"
	"Recipe-Book/internal/utils/storage"
	"Recipe-Book/pkg/recipe"
	"context"
	"errors"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"mime/multipart"
)

type recipePhotoService struct {
	photoBase
}

// NewRecipePhotoService stores photos in the recipe's ordered image list.
func NewRecipePhotoService(recipeService recipe.RecipeService, store storage.PhotoStore) PhotoService {
	return &recipePhotoService{
		photoBase: photoBase{recipeService: recipeService, store: store},
	}
}

func (s *recipePhotoService) UploadPhoto(ctx context.Context, target domain.PhotoTarget, file *multipart.FileHeader) (string, error) {
	if target.RecipeID == 0 {
		return "", rejectUpload(target, domain.ErrMissingRecipeID)
	}

	r, err := s.recipeService.GetRecipeByID(ctx, target.RecipeID)
	if err != nil {
		return "", rejectUpload(target, err)
	}

	ext, err := validateUpload(file)
	if err != nil {
		return "", rejectUpload(target, err)
	}

	filename := uuid.NewString() + ext
	if err := s.write(ctx, r.ID, filename, file); err != nil {
		return "", err
	}

	r.AddImageURL(filename)
	if _, err := s.recipeService.SaveRecipe(ctx, r); err != nil {
		return "", err
	}

	log.Infow("recipe photo uploaded", "recipe_id", r.ID, "filename", filename)
	return filename, nil
}

func (s *recipePhotoService) GetPhotoFilenames(ctx context.Context, target domain.PhotoTarget) ([]string, error) {
	if target.RecipeID == 0 {
		return nil, domain.ErrMissingRecipeID
	}

	r, err := s.recipeService.GetRecipeByID(ctx, target.RecipeID)
	if err != nil {
		return nil, err
	}
	return r.ImageURLs(), nil
}

func (s *recipePhotoService) DeletePhoto(ctx context.Context, recipeID uint, filename string) error {
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

	if r.RemoveImageURL(filename) {
		if _, err := s.recipeService.SaveRecipe(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// DeleteAllPhotos empties the recipe directory and the recipe's image list.
// A recipe without a directory succeeds without doing anything.
func (s *recipePhotoService) DeleteAllPhotos(ctx context.Context, target domain.PhotoTarget) error {
	if target.RecipeID == 0 {
		return domain.ErrMissingRecipeID
	}

	if err := s.store.DeleteDir(ctx, recipeDir(target.RecipeID)); err != nil {
		log.Errorw("delete photo directory", "recipe_id", target.RecipeID, "error", err)
		return err
	}

	r, err := s.recipeService.GetRecipeByID(ctx, target.RecipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return nil
		}
		return err
	}

	if len(r.Images) == 0 {
		return nil
	}
	r.SetImageURLs(nil)
	_, err = s.recipeService.SaveRecipe(ctx, r)
	return err
}
