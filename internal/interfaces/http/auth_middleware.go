package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/umkone/umkone-api/internal/application/dto"
	"github.com/umkone/umkone-api/pkg/jwt"
)

// Kunci Locals untuk identitas pengguna di Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserName  = "user_name"
)

// AuthMiddleware memvalidasi Bearer Token JWT dan menaruh identitas pengguna
// ke c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization wajib diisi"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token kosong"})
		}
		userID, email, name, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token tidak valid atau kedaluwarsa"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserEmail, email)
		c.Locals(LocalUserName, name)
		return c.Next()
	}
}

// GetUserID mengembalikan UserID dari konteks (setelah middleware auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserEmail mengembalikan email pengguna dari konteks.
func GetUserEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalUserEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
