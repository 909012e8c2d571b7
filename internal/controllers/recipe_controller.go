package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RecipeController handles HTTP requests related to recipes and their items
type RecipeController interface {
	// ListRecipes retrieves a page of recipes with recomputed totals
	ListRecipes(c *gin.Context)
	// GetRecipe retrieves a recipe by its ID
	GetRecipe(c *gin.Context)
	// CreateRecipe creates a recipe with its initial items
	CreateRecipe(c *gin.Context)
	// UpdateRecipe partially updates a recipe's own fields
	UpdateRecipe(c *gin.Context)
	// DeleteRecipe deletes a recipe and its items
	DeleteRecipe(c *gin.Context)
	// AddItem appends an item to a recipe
	AddItem(c *gin.Context)
	// UpdateItemQuantity changes the quantity of a recipe item
	UpdateItemQuantity(c *gin.Context)
	// RemoveItem deletes a recipe item
	RemoveItem(c *gin.Context)
}

type recipeController struct {
	service services.RecipeService
	paging  Paging
}

// NewRecipeController creates a new instance of RecipeController
func NewRecipeController(service services.RecipeService, paging Paging) RecipeController {
	return &recipeController{service: service, paging: paging}
}

// ListRecipes godoc
// @Summary List recipes
// @Description Get a page of recipes; totals are recomputed for every row
// @Tags recipes
// @Produce json
// @Param limit query int false "Page size (1-500)" default(100)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} models.Recipe
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/recipes [get]
func (c *recipeController) ListRecipes(ctx *gin.Context) {
	limit, offset, ok := c.paging.parsePage(ctx)
	if !ok {
		return
	}
	recipes, err := c.service.ListRecipes(ctx.Request.Context(), limit, offset)
	if err != nil {
		respondError(ctx, err, models.ErrRecipeNotFound, "Recipe not found")
		return
	}
	ctx.JSON(http.StatusOK, recipes)
}

// GetRecipe godoc
// @Summary Get recipe by ID
// @Description Get a recipe with its items, totals and per-serving values
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} models.Recipe
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/recipes/{id} [get]
func (c *recipeController) GetRecipe(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	recipe, err := c.service.GetRecipe(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrRecipeNotFound, "Recipe not found")
		return
	}
	ctx.JSON(http.StatusOK, recipe)
}

// CreateRecipe godoc
// @Summary Create a new recipe
// @Description Create a recipe; every item must reference an existing food
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body models.RecipeCreate true "Recipe"
// @Success 201 {object} models.Recipe
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/recipes [post]
func (c *recipeController) CreateRecipe(ctx *gin.Context) {
	var in models.RecipeCreate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		validationFailed(ctx, err)
		return
	}
	recipe, err := c.service.CreateRecipe(ctx.Request.Context(), in)
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, "Food not found")
		return
	}
	ctx.JSON(http.StatusCreated, recipe)
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Partially update name, servings, serving unit or manual nutrients
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body models.RecipePatch true "Fields to change"
// @Success 200 {object} models.Recipe
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/recipes/{id} [patch]
func (c *recipeController) UpdateRecipe(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var patch models.RecipePatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		validationFailed(ctx, err)
		return
	}
	recipe, err := c.service.UpdateRecipe(ctx.Request.Context(), id, patch)
	if err != nil {
		respondError(ctx, err, models.ErrRecipeNotFound, "Recipe not found")
		return
	}
	ctx.JSON(http.StatusOK, recipe)
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Delete a recipe together with all of its items
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/recipes/{id} [delete]
func (c *recipeController) DeleteRecipe(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	deleted, err := c.service.DeleteRecipe(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrRecipeNotFound, "Recipe not found")
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrRecipeNotFound, "Recipe not found"))
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddItem godoc
// @Summary Add an item to a recipe
// @Description Append a food quantity to a recipe and return the recomputed recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param item body models.RecipeItemCreate true "Item"
// @Success 201 {object} models.Recipe
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError "Recipe or food not found"
// @Router /api/v1/recipes/{id}/items [post]
func (c *recipeController) AddItem(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var in models.RecipeItemCreate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		validationFailed(ctx, err)
		return
	}
	recipe, err := c.service.AddItem(ctx.Request.Context(), id, in)
	if err != nil {
		respondError(ctx, err, models.ErrRecipeOrFoodGone, "Recipe or food not found")
		return
	}
	ctx.JSON(http.StatusCreated, recipe)
}

// UpdateItemQuantity godoc
// @Summary Update an item's quantity
// @Description Change the quantity of an item; accepts a JSON body or a quantity query parameter
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param item_id path int true "Item ID"
// @Param quantity query number false "New quantity when no body is sent"
// @Param item body models.ItemQuantityUpdate false "New quantity"
// @Success 200 {object} models.Recipe
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/recipes/{id}/items/{item_id} [patch]
func (c *recipeController) UpdateItemQuantity(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(ctx, "item_id")
	if !ok {
		return
	}
	// ShouldBind picks JSON for a JSON body and falls back to the query string otherwise
	var in models.ItemQuantityUpdate
	if err := ctx.ShouldBind(&in); err != nil {
		validationFailed(ctx, err)
		return
	}
	recipe, err := c.service.UpdateItemQuantity(ctx.Request.Context(), id, itemID, in.Quantity)
	if err != nil {
		respondError(ctx, err, models.ErrNotFound, "Recipe or item not found")
		return
	}
	ctx.JSON(http.StatusOK, recipe)
}

// RemoveItem godoc
// @Summary Remove an item from a recipe
// @Description Delete an item that belongs to the recipe
// @Tags recipes
// @Param id path int true "Recipe ID"
// @Param item_id path int true "Item ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/recipes/{id}/items/{item_id} [delete]
func (c *recipeController) RemoveItem(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(ctx, "item_id")
	if !ok {
		return
	}
	if err := c.service.RemoveItem(ctx.Request.Context(), id, itemID); err != nil {
		respondError(ctx, err, models.ErrNotFound, "Recipe or item not found")
		return
	}
	ctx.Status(http.StatusNoContent)
}
