// Package middleware provides authentication, logging, rate-limit, and
// tracing middleware for the application.
package middleware

import (
	"strconv"
	"strings"

	"inkwell/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AuthRequired enforces a valid JWT bearer token. The authenticated user ID
// is stored in c.Locals("userID"). Unsafe operations on the API surface sit
// behind this guard.
func AuthRequired(c *fiber.Ctx) error {
	userID, ok := bearerUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or missing bearer token",
		})
	}
	c.Locals("userID", userID)
	return c.Next()
}

// AuthOptional parses a bearer token when one is present but never rejects
// the request. Read endpoints use it so anonymous and authenticated callers
// share one handler; c.Locals("userID") is set only on success.
func AuthOptional(c *fiber.Ctx) error {
	if userID, ok := bearerUserID(c); ok {
		c.Locals("userID", userID)
	}
	return c.Next()
}

// bearerUserID extracts and validates the Authorization bearer token,
// returning the user ID from the "sub" claim.
func bearerUserID(c *fiber.Ctx) (uint, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	subStr, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}

	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint(userID), true
}
