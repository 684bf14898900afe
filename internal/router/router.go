package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"                   // import the Echo web framework to handle routing
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in logger and recovery middleware
	"github.com/redis/go-redis/v9"                  // Redis client shared by cache and rate limiter

	"github.com/parsarad/recipe-management-api/internal/config"     // runtime configuration
	"github.com/parsarad/recipe-management-api/internal/handler"    // handlers implementing the endpoints
	"github.com/parsarad/recipe-management-api/internal/middleware" // JWT gate, role gate, cache, rate limiter
)

// Deps bundles everything route registration needs.  The Redis client may be
// nil, in which case caching and login rate limiting are disabled.
type Deps struct {
	Cfg        config.Config
	Auth       *handler.AuthHandler
	Users      *handler.UserHandler
	Roles      *handler.RoleHandler
	UserRoles  *handler.UserRoleHandler
	Recipes    *handler.RecipeHandler
	Categories *handler.CategoryHandler
	Ratings    *handler.RatingHandler
	Redis      *redis.Client
}

// exemptPaths is the fixed set of operations reachable without a token:
// login, registration and the public listings.  Everything else passes
// through the JWT gate and the base role gate.  The list is consulted by
// exact, case-insensitive path match.
var exemptPaths = []string{
	"/healthz",
	"/api/user/login",
	"/api/user/register",
	"/api/user/allUsers",
	"/api/role/getAllRoles",
	"/api/recipe/allRecipes",
	"/api/recipe/categories",
	"/api/recipe/title",
	"/api/recipe/search",
	"/api/category/allCategories",
	"/api/userRole/getAllUsersWithRoles",
	"/api/userRole/user-roles",
}

// Register wires all middleware and routes onto the Echo instance.  The
// access gate is global: every request is either exempt or must carry a
// valid token whose role is Admin or Customer; admin-only routes stack an
// extra role check on top.
func Register(e *echo.Echo, d Deps) {
	exempt := middleware.NewExemptList(exemptPaths...)

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.JWTAuth(d.Cfg.JWTSecret, exempt))
	e.Use(middleware.RequireRole(exempt, "Admin", "Customer"))

	admin := middleware.RequireRole(nil, "Admin")
	cache := middleware.ResponseCache(config.LoadCacheConfig(), d.Redis)
	loginLimit := middleware.LoginRateLimit(config.LoadRateLimitConfig(), d.Redis)

	e.GET("/healthz", handler.Health)

	// Identity: login and registration are the only endpoints that accept a
	// password; both are exempt from the gate because their callers are not
	// authenticated yet.
	user := e.Group("/api/user")
	user.POST("/login", d.Auth.Login, loginLimit)
	user.POST("/register", d.Auth.Register)
	user.GET("/allUsers", d.Users.GetAll)
	user.PUT("/updateUser/:userId", d.Users.Update)
	user.DELETE("/deleteUser/:userId", d.Users.Delete, admin)

	role := e.Group("/api/role")
	role.POST("/createRole", d.Roles.Create, admin)
	role.DELETE("/deleteRole/:roleId", d.Roles.Delete, admin)
	role.GET("/getAllRoles", d.Roles.GetAll, cache)

	userRole := e.Group("/api/userRole")
	userRole.POST("/assignRoleToUser", d.UserRoles.Assign, admin)
	userRole.GET("/getAllUsersWithRoles", d.UserRoles.GetAllWithRoles)
	userRole.PUT("/updateUserRoles/:userId", d.UserRoles.Replace, admin)
	userRole.PUT("/removeUserRoles/:userId", d.UserRoles.Remove, admin)
	userRole.GET("/user-roles", d.UserRoles.RolesByUsername)

	recipe := e.Group("/api/recipe")
	recipe.POST("/create-recipe", d.Recipes.Create, admin)
	recipe.PUT("", d.Recipes.Update, admin)
	recipe.DELETE("/:recipeId", d.Recipes.Delete, admin)
	recipe.GET("/allRecipes", d.Recipes.GetAll, cache)
	recipe.GET("/categories", d.Recipes.ByCategories, cache)
	recipe.GET("/byCreator", d.Recipes.ByCreator, admin)
	recipe.GET("/title", d.Recipes.ByTitle, cache)
	recipe.GET("/search", d.Recipes.Search, cache)

	category := e.Group("/api/category")
	category.POST("", d.Categories.Create, admin)
	category.GET("/allCategories", d.Categories.GetAll, cache)
	category.DELETE("/:categoryId", d.Categories.Delete, admin)

	rating := e.Group("/api/rating")
	rating.POST("/rate", d.Ratings.Rate)
}
