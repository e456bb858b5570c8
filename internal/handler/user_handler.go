package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/internal/service"
	"github.com/photoglow/photoglow-backend/pkg/utils"
)

type UserHandler struct {
	accountService *service.AccountService
	validator      *utils.Validator
}

func NewUserHandler(accountService *service.AccountService, validator *utils.Validator) *UserHandler {
	return &UserHandler{
		accountService: accountService,
		validator:      validator,
	}
}

func (h *UserHandler) AddCredits(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			models.ErrorResponse("User not authenticated"))
	}

	var req models.AddCreditsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("User ID and a positive credit amount are required"))
	}

	result, err := h.accountService.AddCredits(userID, req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(result)
}

func (h *UserHandler) GetUserInfo(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			models.ErrorResponse("User not authenticated"))
	}

	info, err := h.accountService.GetInfo(userID, c.Params("userId"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(info)
}
