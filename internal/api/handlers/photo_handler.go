package handlers

import (
	"Recipe-Book/domain"
	"Recipe-Book/internal/api/presenters"
	"Recipe-Book/pkg/photo"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

type (
	PhotoHandler interface {
		UploadPhoto(c *fiber.Ctx) error
		GetPhoto(c *fiber.Ctx) error
		GetPhotoFilenames(c *fiber.Ctx) error
		DeletePhoto(c *fiber.Ctx) error
		DeleteAllPhotos(c *fiber.Ctx) error
	}

	photoHandler struct {
		photoService photo.PhotoService
		validator    *validator.Validate
		withStep     bool
	}
)

// NewRecipePhotoHandler serves /recipes/:id/photo[s].
func NewRecipePhotoHandler(photoService photo.PhotoService, validator *validator.Validate) PhotoHandler {
	return &photoHandler{photoService: photoService, validator: validator}
}

// NewStepPhotoHandler serves /recipes/:id/steps/:stepId/photo[s].
func NewStepPhotoHandler(photoService photo.PhotoService, validator *validator.Validate) PhotoHandler {
	return &photoHandler{photoService: photoService, validator: validator, withStep: true}
}

func (h *photoHandler) target(c *fiber.Ctx) (domain.PhotoTarget, error) {
	recipeID, err := paramID(c, "id", domain.ErrInvalidRecipeID)
	if err != nil {
		return domain.PhotoTarget{}, err
	}

	target := domain.PhotoTarget{RecipeID: recipeID}
	if h.withStep {
		stepID, err := paramID(c, "stepId", domain.ErrInvalidStepID)
		if err != nil {
			return domain.PhotoTarget{}, err
		}
		target.StepID = stepID
	}
	return target, nil
}

func (h *photoHandler) UploadPhoto(c *fiber.Ctx) error {
	target, err := h.target(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	file, err := c.FormFile("file")
	if err != nil && !errors.Is(err, fasthttp.ErrMissingFile) {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	req := &domain.UploadPhotoRequest{File: file}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, domain.ErrEmptyFile)
	}

	filename, err := h.photoService.UploadPhoto(c.Context(), target, req.File)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUploadPhoto, err)
	}

	return presenters.SuccessResponse(c, domain.UploadPhotoResponse{Filename: filename}, fiber.StatusOK,
		fmt.Sprintf("%s: %s", domain.MessageSuccessUploadPhoto, filename))
}

func (h *photoHandler) GetPhoto(c *fiber.Ctx) error {
	target, err := h.target(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPhoto, err)
	}
	filename := c.Params("filename")

	obj, err := h.photoService.GetPhoto(c.Context(), target.RecipeID, filename)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetPhoto, err)
	}

	c.Set(fiber.HeaderContentType, h.photoService.GetContentType(filename))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.SendStream(obj.Body, int(obj.Size))
}

func (h *photoHandler) GetPhotoFilenames(c *fiber.Ctx) error {
	target, err := h.target(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPhotos, err)
	}

	filenames, err := h.photoService.GetPhotoFilenames(c.Context(), target)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetPhotos, err)
	}

	return c.JSON(filenames)
}

func (h *photoHandler) DeletePhoto(c *fiber.Ctx) error {
	target, err := h.target(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePhoto, err)
	}

	if err := h.photoService.DeletePhoto(c.Context(), target.RecipeID, c.Params("filename")); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeletePhoto, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *photoHandler) DeleteAllPhotos(c *fiber.Ctx) error {
	target, err := h.target(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteAllPhotos, err)
	}

	if err := h.photoService.DeleteAllPhotos(c.Context(), target); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteAllPhotos, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
