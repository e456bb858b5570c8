package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/internal/service"
	"github.com/photoglow/photoglow-backend/pkg/utils"
)

type PurchaseHandler struct {
	purchaseService *service.PurchaseService
	validator       *utils.Validator
}

func NewPurchaseHandler(purchaseService *service.PurchaseService, validator *utils.Validator) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		validator:       validator,
	}
}

func (h *PurchaseHandler) VerifyPurchase(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			models.ErrorResponse("User not authenticated"))
	}

	var req models.VerifyPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("Receipt, product ID and platform are required"))
	}

	result, err := h.purchaseService.VerifyPurchase(c.Context(), userID, req)
	if err != nil {
		return errorJSON(c, err)
	}

	// Başarısız doğrulama da 200 döner: iş sonucu, hata değil.
	return c.JSON(result)
}

func (h *PurchaseHandler) GetPurchaseHistory(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			models.ErrorResponse("User not authenticated"))
	}

	attempts, err := h.purchaseService.GetPurchaseHistory(userID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(attempts, "Purchase history retrieved"))
}
