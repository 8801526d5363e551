package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wasteless-dev/wasteless/internal/auth"
	"github.com/wasteless-dev/wasteless/internal/handlers"
	"github.com/wasteless-dev/wasteless/internal/middleware"
)

// New builds the engine. Everything under /users/:user_id requires a
// valid bearer token whose caller id matches the path's user id.
func New(
	tm *auth.TokenManager,
	authHandler *handlers.AuthHandler,
	foodHandler *handlers.FoodHandler,
	recipeHandler *handlers.RecipeHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	r.POST("/users/", authHandler.Register)
	r.POST("/login/", authHandler.Login)

	users := r.Group("/users/:user_id", middleware.Auth(tm), middleware.RequireOwner())
	{
		food := users.Group("/food")
		{
			food.POST("", foodHandler.AddItem)
			food.GET("", foodHandler.ListItems)
			food.DELETE("", foodHandler.DeleteAllItems)
			food.GET("/expiring", foodHandler.ExpiringItems)
			food.GET("/:item_id", foodHandler.ItemDetail)
			food.POST("/:item_id/consume", foodHandler.ConsumeItem)
			food.DELETE("/:item_id", foodHandler.DeleteItem)
		}

		recipes := users.Group("/recipes")
		{
			recipes.POST("", recipeHandler.SaveRecipe)
			recipes.GET("/suggest", recipeHandler.Suggest)
		}
	}

	return r
}
