// Package navigation serves the role navigation config to the frontend.
// The compiled-in tables can be overridden per role from a YAML file so
// deployments can reorder or rename entries without a rebuild.
package navigation

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gopkg.in/yaml.v2"

	"github.com/bookhaven/lms-backend/internal/shell/nav"
	"github.com/bookhaven/lms-backend/model"
)

// Config is the optional YAML override, keyed by role name
type Config struct {
	Roles map[string][]nav.Item `yaml:"roles"`
}

// LoadConfig reads a YAML navigation override. A missing path is not an
// error; it simply means the compiled defaults apply.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ItemsFor returns the navigation list for a role, preferring the YAML
// override when one is configured for that role.
func (cfg *Config) ItemsFor(role model.Role) []nav.Item {
	role = model.ParseRole(string(role))
	if cfg != nil && cfg.Roles != nil {
		if items, ok := cfg.Roles[string(role)]; ok && len(items) > 0 {
			return items
		}
	}
	return nav.ItemsFor(role)
}

// GetNavigation serves the navigation items for the requested role.
// Unknown role strings fall back to the guest list.
func GetNavigation(cfg *Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := model.ParseRole(c.Params("role"))
		return c.JSON(fiber.Map{
			"role":  role,
			"items": cfg.ItemsFor(role),
		})
	}
}
