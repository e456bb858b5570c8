package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/pkg/apperror"
)

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(apperror.HTTPStatus(err)).JSON(
		models.ErrorResponse(apperror.Message(err)))
}

// callerID middleware'in koyduğu kimliği okur.
func callerID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals("userID").(string)
	return userID, ok && userID != ""
}
