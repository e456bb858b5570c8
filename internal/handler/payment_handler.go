package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/internal/service"
	"github.com/stripe/stripe-go/v74/webhook"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	webhookSecret  string
	logger         *zap.Logger
}

func NewPaymentHandler(paymentService *service.PaymentService, webhookSecret string, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		webhookSecret:  webhookSecret,
		logger:         logger,
	}
}

func (h *PaymentHandler) CreateCheckoutSession(c *fiber.Ctx) error {
	userID, ok := callerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			models.ErrorResponse("User not authenticated"))
	}

	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("Product ID is required"))
	}

	session, err := h.paymentService.CreateCheckoutSession(userID, productID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(models.SuccessResponse(session, "Checkout session created"))
}

func (h *PaymentHandler) HandleStripeWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	signatureHeader := c.Get("Stripe-Signature")

	// API version mismatch'i ignore et
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, h.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		})
	if err != nil {
		h.logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(
			models.ErrorResponse("Webhook signature verification failed"))
	}

	if err := h.paymentService.HandleStripeWebhook(&event); err != nil {
		h.logger.Error("stripe webhook processing failed",
			zap.String("event_type", string(event.Type)), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(
			models.ErrorResponse("Webhook processing failed"))
	}

	return c.SendStatus(fiber.StatusOK)
}
