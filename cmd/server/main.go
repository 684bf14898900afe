package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/parsarad/recipe-management-api/internal/config"     // Internal config loader
	"github.com/parsarad/recipe-management-api/internal/database"   // MySQL connection
	"github.com/parsarad/recipe-management-api/internal/handler"    // HTTP handlers
	"github.com/parsarad/recipe-management-api/internal/queue"      // registration event consumer
	"github.com/parsarad/recipe-management-api/internal/repository" // data access layer
	"github.com/parsarad/recipe-management-api/internal/router"     // route registration
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: a nil client disables response caching and login
	// rate limiting without affecting correctness.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	roles := repository.NewRoleRepo(db)
	userRoles := repository.NewUserRoleRepo(db)
	recipes := repository.NewRecipeRepo(db)
	categories := repository.NewCategoryRepo(db)
	ratings := repository.NewRatingRepo(db)

	e := echo.New()
	router.Register(e, router.Deps{
		Cfg:        cfg,
		Auth:       handler.NewAuthHandler(cfg, users),
		Users:      handler.NewUserHandler(users),
		Roles:      handler.NewRoleHandler(roles),
		UserRoles:  handler.NewUserRoleHandler(userRoles),
		Recipes:    handler.NewRecipeHandler(recipes),
		Categories: handler.NewCategoryHandler(categories),
		Ratings:    handler.NewRatingHandler(ratings),
		Redis:      rdb,
	})

	// Consume registration events in the background; the consumer has its
	// own reconnect loop and never takes the API down with it.
	go func() {
		if err := queue.StartRegistrationConsumer(); err != nil {
			log.Printf("registration consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
