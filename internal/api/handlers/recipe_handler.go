package handlers

import (
	"Recipe-Book/domain"
	"Recipe-Book/entities"
	"Recipe-Book/internal/api/presenters"
	"Recipe-Book/pkg/recipe"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"strconv"
)

type (
	RecipeHandler interface {
		GetAllRecipes(c *fiber.Ctx) error
		GetRecipeByID(c *fiber.Ctx) error
		GetRecipesByCategory(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetProgress(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetAllRecipes(c *fiber.Ctx) error {
	recipes, err := h.recipeService.GetAllRecipes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return c.JSON(recipe.ToRecipeResponses(recipes))
}

func (h *recipeHandler) GetRecipeByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.ErrInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.recipeService.GetRecipeByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return c.JSON(recipe.ToRecipeResponse(res))
}

func (h *recipeHandler) GetRecipesByCategory(c *fiber.Ctx) error {
	category, err := entities.ParseCategory(c.Params("category"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, domain.ErrInvalidCategory)
	}

	recipes, err := h.recipeService.GetRecipesByCategory(c.Context(), category)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return c.JSON(recipe.ToRecipeResponses(recipes))
}

// SearchRecipes requires the title key; an empty value matches every recipe.
func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	if !c.Request().URI().QueryArgs().Has("title") {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, domain.ErrMissingSearchTerm)
	}

	recipes, err := h.recipeService.SearchRecipes(c.Context(), c.Query("title"))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedSearchRecipes, err)
	}

	return c.JSON(recipe.ToRecipeResponses(recipes))
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	res, err := h.recipeService.SaveRecipe(c.Context(), recipe.NewRecipeFromRequest(*req))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedCreateRecipe, err)
	}

	return c.Status(fiber.StatusCreated).JSON(recipe.ToRecipeResponse(res))
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.ErrInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	req := new(domain.RecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedValidation, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), id, recipe.NewRecipeFromRequest(*req))
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedUpdateRecipe, err)
	}

	return c.JSON(recipe.ToRecipeResponse(res))
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.ErrInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedDeleteRecipe, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *recipeHandler) GetProgress(c *fiber.Ctx) error {
	id, err := paramID(c, "id", domain.ErrInvalidRecipeID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProgress, err)
	}

	order, err := strconv.Atoi(c.Query("completedStepOrder"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProgress, domain.ErrInvalidStepOrder)
	}

	progress, err := h.recipeService.GetProgress(c.Context(), id, order)
	if err != nil {
		return presenters.ErrorResponse(c, errorStatus(err), domain.MessageFailedGetProgress, err)
	}

	return c.JSON(progress)
}
