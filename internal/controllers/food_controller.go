package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/services"
	"github.com/gin-gonic/gin"
)

// FoodController handles HTTP requests related to foods
type FoodController interface {
	// ListFoods retrieves a page of foods
	ListFoods(c *gin.Context)
	// GetFood retrieves a food by its ID
	GetFood(c *gin.Context)
	// CreateFood creates a new food
	CreateFood(c *gin.Context)
	// UpdateFood partially updates an existing food
	UpdateFood(c *gin.Context)
	// DeleteFood deletes a food by its ID
	DeleteFood(c *gin.Context)
}

type foodController struct {
	service services.FoodService
	paging  Paging
}

// NewFoodController creates a new instance of FoodController
func NewFoodController(service services.FoodService, paging Paging) FoodController {
	return &foodController{service: service, paging: paging}
}

// ListFoods godoc
// @Summary List foods
// @Description Get a page of foods ordered by id
// @Tags foods
// @Produce json
// @Param limit query int false "Page size (1-500)" default(100)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {array} models.Food
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/foods [get]
func (c *foodController) ListFoods(ctx *gin.Context) {
	limit, offset, ok := c.paging.parsePage(ctx)
	if !ok {
		return
	}
	foods, err := c.service.ListFoods(ctx.Request.Context(), limit, offset)
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, "Food not found")
		return
	}
	ctx.JSON(http.StatusOK, foods)
}

// GetFood godoc
// @Summary Get food by ID
// @Description Get a single food by its ID
// @Tags foods
// @Produce json
// @Param id path int true "Food ID"
// @Success 200 {object} models.Food
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/foods/{id} [get]
func (c *foodController) GetFood(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	food, err := c.service.GetFood(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, "Food not found")
		return
	}
	ctx.JSON(http.StatusOK, food)
}

// CreateFood godoc
// @Summary Create a new food
// @Description Create a food; nutrient values are per serving
// @Tags foods
// @Accept json
// @Produce json
// @Param food body models.FoodCreate true "Food"
// @Success 201 {object} models.Food
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/foods [post]
func (c *foodController) CreateFood(ctx *gin.Context) {
	var in models.FoodCreate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		validationFailed(ctx, err)
		return
	}
	food, err := c.service.CreateFood(ctx.Request.Context(), in)
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, "Food not found")
		return
	}
	ctx.JSON(http.StatusCreated, food)
}

// UpdateFood godoc
// @Summary Update a food
// @Description Partially update a food; omitted fields are left untouched
// @Tags foods
// @Accept json
// @Produce json
// @Param id path int true "Food ID"
// @Param food body models.FoodPatch true "Fields to change"
// @Success 200 {object} models.Food
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/foods/{id} [patch]
func (c *foodController) UpdateFood(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var patch models.FoodPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		validationFailed(ctx, err)
		return
	}
	food, err := c.service.UpdateFood(ctx.Request.Context(), id, patch)
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, "Food not found")
		return
	}
	ctx.JSON(http.StatusOK, food)
}

// DeleteFood godoc
// @Summary Delete a food
// @Description Delete a food by its ID; foods used by recipes cannot be deleted
// @Tags foods
// @Param id path int true "Food ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/foods/{id} [delete]
func (c *foodController) DeleteFood(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	deleted, err := c.service.DeleteFood(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrFoodNotFound, "Food not found")
		return
	}
	if !deleted {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrFoodNotFound, "Food not found"))
		return
	}
	ctx.Status(http.StatusNoContent)
}
