package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedValidation     = "request validation failed"

	ErrBodyRequest = errors.New("invalid request body")
)

// IsNotFound reports whether err means an id or file did not resolve.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecipeNotFound) ||
		errors.Is(err, ErrStepNotFound) ||
		errors.Is(err, ErrPhotoNotFound)
}

// IsValidation reports whether err was caused by bad caller input.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrMissingRecipeID, ErrMissingStepID, ErrEmptyFile, ErrMissingFilename,
		ErrInvalidImageFormat, ErrInvalidFilename, ErrInvalidRecipeID, ErrInvalidStepID,
		ErrInvalidCategory, ErrInvalidDifficulty, ErrInvalidStepOrder, ErrMissingSearchTerm,
		ErrBodyRequest,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
