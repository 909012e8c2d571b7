package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every API handler on the given group
func RegisterRoutes(api *gin.RouterGroup, foods FoodController, recipes RecipeController, seed SeedController) {
	foodRoutes := api.Group("/foods")
	{
		foodRoutes.GET("", foods.ListFoods)
		foodRoutes.POST("", foods.CreateFood)
		foodRoutes.GET("/:id", foods.GetFood)
		foodRoutes.PATCH("/:id", foods.UpdateFood)
		foodRoutes.DELETE("/:id", foods.DeleteFood)
	}

	recipeRoutes := api.Group("/recipes")
	{
		recipeRoutes.GET("", recipes.ListRecipes)
		recipeRoutes.POST("", recipes.CreateRecipe)
		recipeRoutes.GET("/:id", recipes.GetRecipe)
		recipeRoutes.PATCH("/:id", recipes.UpdateRecipe)
		recipeRoutes.DELETE("/:id", recipes.DeleteRecipe)
		recipeRoutes.POST("/:id/items", recipes.AddItem)
		recipeRoutes.PATCH("/:id/items/:item_id", recipes.UpdateItemQuantity)
		recipeRoutes.DELETE("/:id/items/:item_id", recipes.RemoveItem)
	}

	api.POST("/seed/foods", seed.SeedFoods)
}
