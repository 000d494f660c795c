// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/bookhaven/lms-backend/model"
	"github.com/bookhaven/lms-backend/restapi/modules/auth"
	"github.com/bookhaven/lms-backend/restapi/modules/navigation"
	"github.com/bookhaven/lms-backend/restapi/modules/profile"
	"github.com/bookhaven/lms-backend/store"
	"github.com/bookhaven/lms-backend/util"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, db *store.Store, schema graphql.Schema) {
	navConfig, err := navigation.LoadConfig(util.GetEnvDefault("NAV_CONFIG", "configs/navigation.yaml"))
	if err != nil {
		util.Logger.Warn("invalid navigation config, using defaults", zap.Error(err))
		navConfig = &navigation.Config{}
	}

	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL Route - Mounted within the api group to inherit path prefixes
	api.Post("/graphql", auth.OptionalAuth, GraphQLHandler(schema))

	// Auth Routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", auth.Login(db))
	authGroup.Post("/register", auth.Register(db))
	authGroup.Post("/logout", auth.Logout())
	authGroup.Get("/me", auth.OptionalAuth, auth.Me(db))
	authGroup.Post("/forgot-password", auth.ForgotPassword(db))
	authGroup.Post("/reset-password", auth.ResetPassword(db))
	authGroup.Post("/change-password", auth.RequireAuth, auth.ChangePassword(db))
	authGroup.Post("/refresh", auth.RefreshToken())

	// Per-role profile endpoints consumed by the frontend shell
	profileGroup := api.Group("/profile", auth.RequireAuth)
	profileGroup.Get("/user", auth.RequireRole(model.RoleUser), profile.GetUserProfile(db))
	profileGroup.Get("/librarian", auth.RequireRole(model.RoleLibrarian), profile.GetLibrarianProfile(db))
	profileGroup.Get("/admin", auth.RequireRole(model.RoleAdmin), profile.GetAdminProfile(db))

	// Navigation config (public; role comes from the path)
	api.Get("/navigation/:role", navigation.GetNavigation(navConfig))

	// User Management (Admin)
	userGroup := api.Group("/users", auth.RequireAuth, auth.RequireRole(model.RoleAdmin))
	userGroup.Get("/", auth.ListUsers(db))
	userGroup.Post("/", auth.CreateUser(db))
	userGroup.Get("/:username", auth.GetUser(db))
	userGroup.Put("/:username", auth.UpdateUser(db))
	userGroup.Delete("/:username", auth.DeleteUser(db))

	util.Logger.Info("API routes initialized successfully")
}
