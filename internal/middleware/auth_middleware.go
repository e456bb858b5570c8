package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/photoglow/photoglow-backend/internal/models"
	jwtPkg "github.com/photoglow/photoglow-backend/pkg/jwt"
	"go.uber.org/zap"
)

// AuthMiddleware bearer token'dan kullanıcı kimliğini çözer. Kimlik yoksa
// istek başka hiçbir iş yapılmadan unauthenticated ile kesilir.
func AuthMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(
				models.ErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(
				models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString)
		if err != nil {
			logger.Info("token validation failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(
				models.ErrorResponse("Invalid token"))
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(
				models.ErrorResponse("Invalid user ID in token"))
		}

		logger.Debug("auth resolved", zap.String("user_id", userID))
		c.Locals("userID", userID)

		return c.Next()
	}
}
