package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/wasteless-dev/wasteless/db"
	"github.com/wasteless-dev/wasteless/internal/auth"
	"github.com/wasteless-dev/wasteless/internal/config"
	"github.com/wasteless-dev/wasteless/internal/handlers"
	"github.com/wasteless-dev/wasteless/internal/router"
	"github.com/wasteless-dev/wasteless/internal/services"
	"github.com/wasteless-dev/wasteless/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gormDB, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userStore := store.NewUserStore(gormDB)
	foodStore := store.NewFoodStore(gormDB)
	recipeStore := store.NewRecipeStore(gormDB)

	userService := services.NewUserService(userStore, tokenManager)
	foodService := services.NewFoodService(foodStore)
	recipeService := services.NewRecipeService(recipeStore, foodStore)

	r := router.New(
		tokenManager,
		handlers.NewAuthHandler(userService),
		handlers.NewFoodHandler(foodService),
		handlers.NewRecipeHandler(recipeService),
		cfg.CORSAllowedOrigins(),
	)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
