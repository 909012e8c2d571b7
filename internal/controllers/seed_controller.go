package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-nutrition-api/internal/models"
	"github.com/franciscosanchezn/gin-nutrition-api/internal/services"
	"github.com/gin-gonic/gin"
)

// maxSeedCount caps a single seed request
const maxSeedCount = 100

// SeedController handles requests that insert sample data
type SeedController interface {
	// SeedFoods inserts shuffled sample foods
	SeedFoods(c *gin.Context)
}

type seedController struct {
	service services.SeedService
}

// NewSeedController creates a new instance of SeedController
func NewSeedController(service services.SeedService) SeedController {
	return &seedController{service: service}
}

// SeedFoods godoc
// @Summary Seed sample foods
// @Description Insert up to count shuffled sample foods; names that already exist are skipped
// @Tags seed
// @Produce json
// @Param count query int false "Number of foods to insert (1-100)" default(6)
// @Success 201 {array} models.Food
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/seed/foods [post]
func (c *seedController) SeedFoods(ctx *gin.Context) {
	count, err := strconv.Atoi(ctx.DefaultQuery("count", strconv.Itoa(len(services.SampleFoods()))))
	if err != nil || count < 1 || count > maxSeedCount {
		badRequest(ctx, "count must be an integer between 1 and "+strconv.Itoa(maxSeedCount))
		return
	}
	foods, err := c.service.SeedFoods(ctx.Request.Context(), count)
	if err != nil {
		respondError(ctx, err, models.ErrNotFound, "Not found")
		return
	}
	ctx.JSON(http.StatusCreated, foods)
}
