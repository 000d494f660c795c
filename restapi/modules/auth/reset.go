package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bookhaven/lms-backend/model"
	"github.com/bookhaven/lms-backend/store"
	"github.com/bookhaven/lms-backend/util"
)

// Reset tokens expire after one hour
const resetTokenTTL = time.Hour

// ForgotPassword mints a time-limited reset token for the account behind
// the supplied email. The response is identical whether or not the account
// exists so the endpoint cannot be used to enumerate members. Email
// delivery is out of scope; the token is logged for the operator.
func ForgotPassword(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ForgotPasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Email == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email is required"})
		}

		user, err := db.GetUserByEmail(req.Email)
		if err == nil {
			token, tokenErr := GenerateSecureToken(32)
			if tokenErr == nil {
				db.PutResetToken(&model.ResetToken{
					Token:     token,
					Username:  user.Username,
					ExpiresAt: time.Now().Add(resetTokenTTL),
				})
				util.Logger.Info("password reset token issued",
					zap.String("username", user.Username),
					zap.String("token", token))
			} else {
				util.Logger.Error("failed to mint reset token", zap.Error(tokenErr))
			}
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "If that email is registered, a reset link has been sent",
		})
	}
}

// ResetPassword consumes a reset token and sets a new password
func ResetPassword(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req ResetPasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		if req.Token == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token is required"})
		}
		if err := ValidatePasswordStrength(req.NewPassword); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		token, err := db.ConsumeResetToken(req.Token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired reset token"})
		}

		user, err := db.GetUserByUsername(token.Username)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get user"})
		}

		newHash, err := HashPassword(req.NewPassword)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}

		user.PasswordHash = newHash
		if err := db.UpdateUser(user); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update password"})
		}

		return c.JSON(fiber.Map{"success": true, "message": "Password has been reset"})
	}
}
