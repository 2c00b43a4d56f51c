// Package middleware provides authentication, logging and rate limiting
// middleware for the application.
package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/daksh1821/Ask-Away/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// AuthRequired is a middleware that enforces authentication for protected routes.
func AuthRequired(c *fiber.Ctx) error {
	userID, err := userIDFromHeader(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	setUserIdentity(c, userID)
	return c.Next()
}

// OptionalAuth resolves the viewer identity when a valid bearer token is
// present but lets anonymous requests through. Read paths use it so
// viewer-specific fields (starred status, view dedup identity) can be
// computed without requiring login.
func OptionalAuth(c *fiber.Ctx) error {
	if c.Get("Authorization") == "" {
		return c.Next()
	}
	if userID, err := userIDFromHeader(c); err == nil {
		setUserIdentity(c, userID)
	}
	return c.Next()
}

// setUserIdentity stores the resolved user in fiber locals and syncs it to
// the request's UserContext so logs and downstream services can see it.
func setUserIdentity(c *fiber.Ctx, userID uint) {
	c.Locals("userID", userID)
	ctx := context.WithValue(c.UserContext(), UserIDKey, userID)
	c.SetUserContext(ctx)
}

func userIDFromHeader(c *fiber.Ctx) (uint, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, errMissingAuth
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, errBadAuthFormat
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errInvalidToken
	}

	// User ID lives in the "sub" claim (RFC 7519 subject)
	subClaim, ok := claims["sub"]
	if !ok {
		return 0, errInvalidToken
	}
	subStr, ok := subClaim.(string)
	if !ok {
		return 0, errInvalidToken
	}

	userIDVal, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil {
		return 0, errInvalidToken
	}

	return uint(userIDVal), nil
}

var (
	errMissingAuth   = fiber.NewError(fiber.StatusUnauthorized, "Authorization header required")
	errBadAuthFormat = fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
	errInvalidToken  = fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
)
