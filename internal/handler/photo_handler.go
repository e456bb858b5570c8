package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/internal/service"
)

type PhotoHandler struct {
	photoService *service.PhotoService
}

func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

func (h *PhotoHandler) GetUserPhotos(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			models.ErrorResponse("User not authenticated"))
	}

	result, err := h.photoService.GetUserPhotos(userID, c.Params("userId"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(result)
}

func (h *PhotoHandler) UploadPhoto(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			models.ErrorResponse("User not authenticated"))
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("No file uploaded"))
	}

	theme := c.FormValue("theme")

	photo, err := h.photoService.UploadPhoto(c.Context(), userID, file, theme)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(photo, "Photo uploaded successfully"))
}

func (h *PhotoHandler) DeletePhoto(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			models.ErrorResponse("User not authenticated"))
	}

	if err := h.photoService.DeletePhoto(c.Context(), userID, c.Params("id")); err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Photo deleted successfully"))
}
