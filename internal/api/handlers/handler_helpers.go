package handlers

import (
	"Recipe-Book/domain"
	"github.com/gofiber/fiber/v2"
	"strconv"
)

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case domain.IsNotFound(err):
		return fiber.StatusNotFound
	case domain.IsValidation(err):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// paramID parses a positive integer path parameter.
func paramID(c *fiber.Ctx, name string, invalid error) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, invalid
	}
	return uint(id), nil
}
