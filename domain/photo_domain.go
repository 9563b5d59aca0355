package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadPhoto     = "photo uploaded successfully"
	MessageSuccessGetPhotos       = "success get photos"
	MessageSuccessDeletePhoto     = "photo deleted successfully"
	MessageSuccessDeleteAllPhotos = "photos deleted successfully"

	MessageFailedUploadPhoto     = "failed to upload photo. file may be empty or invalid"
	MessageFailedGetPhoto        = "failed to get photo"
	MessageFailedGetPhotos       = "failed to get photos"
	MessageFailedDeletePhoto     = "failed to delete photo"
	MessageFailedDeleteAllPhotos = "failed to delete photos"

	ErrMissingRecipeID    = errors.New("recipe id is required")
	ErrMissingStepID      = errors.New("step id is required")
	ErrEmptyFile          = errors.New("uploaded file is empty")
	ErrMissingFilename    = errors.New("uploaded file has no name")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrInvalidFilename    = errors.New("invalid photo filename")
	ErrPhotoNotFound      = errors.New("photo not found")
)

type (
	// PhotoTarget names what a photo belongs to. Zero ids mean "absent";
	// database ids start at 1.
	PhotoTarget struct {
		RecipeID uint
		StepID   uint
	}

	UploadPhotoRequest struct {
		File *multipart.FileHeader `form:"file" validate:"required"`
	}

	UploadPhotoResponse struct {
		Filename string `json:"filename"`
	}
)
