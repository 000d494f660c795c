// package main provides the entry point for the BookHaven LMS backend,
// serving the authentication, profile, navigation and catalog APIs the
// frontend shell depends on.
package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bookhaven/lms-backend/internal/api"
	"github.com/bookhaven/lms-backend/restapi/modules/auth"
	"github.com/bookhaven/lms-backend/store"
	"github.com/bookhaven/lms-backend/util"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	if secret := util.GetEnvDefault("JWT_SECRET", ""); secret != "" {
		auth.SetJWTSecret(secret)
	} else {
		util.Logger.Warn("JWT_SECRET not set, using development default")
	}

	// Seed the in-memory store with the sample dataset
	db := store.Initialize()

	app := api.NewFiberApp(db)

	port := util.GetEnvDefault("MS_PORT", "3000")
	util.Logger.Info("starting server",
		zap.String("port", port),
		zap.String("graphql", "/api/v1/graphql"))
	if err := app.Listen(":" + port); err != nil {
		util.Logger.Fatal("failed to start server", zap.Error(err))
	}
}
