package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Prithwiraj731/Money-Miners/internal/config"
	"github.com/Prithwiraj731/Money-Miners/internal/utils"
)

const claimsContextKey = "authClaims"

// RequireAuth validates bearer tokens and loads the claims into context.
func RequireAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearer(c, cfg.JWTSecret)
		if err != nil {
			return err
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

// RequireAdmin validates bearer tokens and rejects non-admin identities.
func RequireAdmin(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseBearer(c, cfg.JWTSecret)
		if err != nil {
			return err
		}

		if claims.Role != utils.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Access denied. Admin privileges required.")
		}

		c.Locals(claimsContextKey, claims)
		return c.Next()
	}
}

func parseBearer(c *fiber.Ctx, secret string) (*utils.Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "No token, authorization denied")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token is not valid")
	}

	claims, err := utils.ParseToken(secret, parts[1])
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token is not valid")
	}

	return claims, nil
}

// GetClaims extracts the authenticated claims from context.
func GetClaims(c *fiber.Ctx) (*utils.Claims, bool) {
	value := c.Locals(claimsContextKey)
	if value == nil {
		return nil, false
	}

	claims, ok := value.(*utils.Claims)
	return claims, ok
}

// GetCurrentUserID extracts the authenticated user ID from context.
func GetCurrentUserID(c *fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := GetClaims(c)
	if !ok || claims.UserID == "" {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
