package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/photoglow/photoglow-backend/internal/service"
	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
	logger              *zap.Logger
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		logger:              logger,
	}
}

// HandleSubscriptionUpdate server-to-server webhook: auth yok, düz 200/500.
func (h *SubscriptionHandler) HandleSubscriptionUpdate(c *fiber.Ctx) error {
	platform := c.Params("platform")

	if err := h.subscriptionService.HandleUpdate(platform, c.Body()); err != nil {
		h.logger.Error("subscription update failed",
			zap.String("platform", platform), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Error")
	}

	return c.SendString("OK")
}
