// Package auth provides authentication handlers for Fiber.
package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bookhaven/lms-backend/model"
	"github.com/bookhaven/lms-backend/store"
)

// ============================================================================
// AUTH HANDLERS
// ============================================================================

// DashboardPath returns the landing route for a role after login
func DashboardPath(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return "/admin"
	case model.RoleLibrarian:
		return "/librarian"
	case model.RoleUser:
		return "/user"
	default:
		return "/"
	}
}

// Login handles user login and sets the auth cookie
func Login(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.Username == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username and password are required"})
		}

		// The sign-in form submits an email; direct API callers may use a
		// username. Accept either.
		user, err := db.GetUserByUsername(req.Username)
		if err != nil {
			user, err = db.GetUserByEmail(req.Username)
		}
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}

		if !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Account is inactive"})
		}

		if !CheckPasswordHash(req.Password, user.PasswordHash) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid credentials"})
		}

		token, err := GenerateJWT(user.Username, user.Role)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
		}

		SetAuthCookie(c, token)

		return c.JSON(fiber.Map{
			"success":     true,
			"message":     "Login successful",
			"username":    user.Username,
			"name":        user.Name,
			"email":       user.Email,
			"role":        user.Role,
			"redirect_to": DashboardPath(user.Role),
		})
	}
}

// Register handles public member self-registration
func Register(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.Username == "" || req.Name == "" || req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
		}

		if err := ValidatePasswordStrength(req.Password); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		passwordHash, err := HashPassword(req.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}

		// Self-registration always creates a member account
		user := model.NewUser(req.Username, model.RoleUser)
		user.Name = req.Name
		user.Email = req.Email
		user.PasswordHash = passwordHash

		if err := db.CreateUser(user); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username or Email is already in use"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Account created successfully",
			"user":    user.Summary(),
		})
	}
}

// Logout clears the auth cookie
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     "auth_token",
			Value:    "",
			Expires:  time.Now().Add(-1 * time.Hour),
			MaxAge:   -1,
			HTTPOnly: true,
			Secure:   false,
			SameSite: "Lax",
			Path:     "/",
		})
		return c.JSON(fiber.Map{"message": "Logged out successfully"})
	}
}

// Me returns current authenticated user info
func Me(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, ok := c.Locals("username").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}

		user, err := db.GetUserByUsername(username)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user profile"})
		}

		return c.JSON(fiber.Map{
			"username": user.Username,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
			"status":   user.Status,
		})
	}
}

// ChangePassword handles password change for the authenticated user
func ChangePassword(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, ok := c.Locals("username").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}

		var req struct {
			OldPassword string `json:"old_password"`
			NewPassword string `json:"new_password"`
		}

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if err := ValidatePasswordStrength(req.NewPassword); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		user, err := db.GetUserByUsername(username)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to get user"})
		}

		if !CheckPasswordHash(req.OldPassword, user.PasswordHash) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid old password"})
		}

		newHash, err := HashPassword(req.NewPassword)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}

		user.PasswordHash = newHash

		if err := db.UpdateUser(user); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update password"})
		}

		return c.JSON(fiber.Map{"message": "Password changed successfully"})
	}
}

// RefreshToken refreshes the JWT token
func RefreshToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		oldToken := c.Cookies("auth_token")
		if oldToken == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "No token to refresh"})
		}

		newToken, err := RefreshJWT(oldToken)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		SetAuthCookie(c, newToken)
		return c.JSON(fiber.Map{"message": "Token refreshed successfully"})
	}
}

// ============================================================================
// USER MANAGEMENT (ADMIN)
// ============================================================================

// ListUsers lists all users
func ListUsers(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users := db.ListUsers()

		userList := make([]fiber.Map, len(users))
		for i, user := range users {
			userList[i] = user.Summary()
		}

		return c.JSON(fiber.Map{
			"users": userList,
			"total": len(userList),
		})
	}
}

// CreateUser creates a new user account with an explicit role
func CreateUser(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req struct {
			Username string `json:"username"`
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Role     string `json:"role"`
		}

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username, email, and password are required"})
		}

		// Unknown roles are rejected at the boundary rather than defaulted
		role := model.Role(req.Role)
		if !role.IsAssignable() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role must be one of user, librarian, admin"})
		}

		if err := ValidatePasswordStrength(req.Password); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		passwordHash, err := HashPassword(req.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}

		user := model.NewUser(req.Username, role)
		user.Name = req.Name
		user.Email = req.Email
		user.PasswordHash = passwordHash

		if err := db.CreateUser(user); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already exists"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "User created successfully",
			"user":    user.Summary(),
		})
	}
}

// GetUser retrieves a user by username
func GetUser(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Params("username")

		user, err := db.GetUserByUsername(username)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}

		return c.JSON(fiber.Map{"user": user.Summary()})
	}
}

// UpdateUser updates a user
func UpdateUser(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Params("username")

		var req struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Role     string `json:"role"`
			IsActive *bool  `json:"is_active"`
		}

		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		user, err := db.GetUserByUsername(username)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}

		if req.Name != "" {
			user.Name = req.Name
		}
		if req.Email != "" {
			user.Email = req.Email
		}
		if req.Role != "" {
			role := model.Role(req.Role)
			if !role.IsAssignable() {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Role must be one of user, librarian, admin"})
			}
			user.Role = role
		}
		if req.IsActive != nil {
			user.IsActive = *req.IsActive
		}

		if err := db.UpdateUser(user); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
		}

		return c.JSON(fiber.Map{
			"message": "User updated successfully",
			"user":    user.Summary(),
		})
	}
}

// DeleteUser deletes a user
func DeleteUser(db *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := c.Params("username")
		currentUser, ok := c.Locals("username").(string)
		if ok && currentUser == username {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot delete your own account"})
		}

		if err := db.DeleteUser(username); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
		}

		return c.JSON(fiber.Map{"message": "User deleted successfully"})
	}
}

// ============================================================================
// HELPER FUNCTIONS
// ============================================================================

// SetAuthCookie sets the authentication cookie for a user session.
func SetAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   86400,
		Path:     "/",
	})
}
