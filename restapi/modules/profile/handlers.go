// Package profile serves the per-role profile endpoints consumed by the
// frontend shell after authentication.
package profile

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bookhaven/lms-backend/model"
	"github.com/bookhaven/lms-backend/store"
)

// GetUserProfile returns the member profile for the authenticated user
func GetUserProfile(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c, db)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}

		loans := db.LoansForUser(user.ID)
		now := time.Now()
		borrowed := 0
		fines := 0.0
		for _, l := range loans {
			switch l.EffectiveStatus(now) {
			case model.LoanStatusActive:
				borrowed++
			case model.LoanStatusOverdue:
				borrowed++
				fines += 0.25 * now.Sub(l.DueAt).Hours() / 24
			}
		}

		return c.JSON(model.ProfileResponse{
			Success: true,
			Data: model.Profile{
				Name:          user.Name,
				Email:         user.Email,
				Role:          user.Role,
				MembershipID:  user.ID,
				BorrowedCount: borrowed,
				FinesDue:      fines,
			},
		})
	}
}

// GetLibrarianProfile returns the librarian profile
func GetLibrarianProfile(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c, db)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}

		return c.JSON(model.ProfileResponse{
			Success: true,
			Data: model.Profile{
				Name:         user.Name,
				Email:        user.Email,
				Role:         user.Role,
				Branch:       "Main Branch",
				ShelvedCount: len(db.Books()),
			},
		})
	}
}

// GetAdminProfile returns the admin profile
func GetAdminProfile(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := currentUser(c, db)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}

		return c.JSON(model.ProfileResponse{
			Success: true,
			Data: model.Profile{
				Name:        user.Name,
				Email:       user.Email,
				Role:        user.Role,
				Permissions: []string{"users:manage", "catalog:manage", "reports:view"},
			},
		})
	}
}

func currentUser(c *fiber.Ctx, db *store.Store) (*model.User, error) {
	username, ok := c.Locals("username").(string)
	if !ok {
		return nil, store.ErrNotFound
	}
	return db.GetUserByUsername(username)
}
