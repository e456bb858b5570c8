package service

import (
	"encoding/json"
	"fmt"

	"github.com/photoglow/photoglow-backend/internal/catalog"
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/pkg/apperror"
	"github.com/photoglow/photoglow-backend/pkg/payment"
	"github.com/photoglow/photoglow-backend/pkg/receipt"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"
)

// PaymentService web (Stripe) satın alma kanalı. Krediler IAP ile aynı
// ledger increment'i üzerinden verilir.
type PaymentService struct {
	stripeService *payment.StripeService
	catalog       *catalog.Catalog
	ledger        CreditLedger
	audit         AuditLog
	purchases     CheckoutStore
	logger        *zap.Logger
}

func NewPaymentService(
	stripeService *payment.StripeService,
	cat *catalog.Catalog,
	ledger CreditLedger,
	audit AuditLog,
	purchases CheckoutStore,
	logger *zap.Logger,
) *PaymentService {
	return &PaymentService{
		stripeService: stripeService,
		catalog:       cat,
		ledger:        ledger,
		audit:         audit,
		purchases:     purchases,
		logger:        logger,
	}
}

func (s *PaymentService) CreateCheckoutSession(userID, productID string) (*models.CheckoutSession, error) {
	product, ok := s.catalog.Get(productID)
	if !ok {
		return nil, apperror.InvalidArgument("Unknown product: " + productID)
	}

	session, err := s.stripeService.CreateCheckoutSession(product.Name, product.PriceCents, map[string]string{
		"user_id":    userID,
		"product_id": productID,
	})
	if err != nil {
		s.logger.Error("failed to create checkout session",
			zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Internal("Failed to create checkout session")
	}

	purchase := &models.CheckoutPurchase{
		UserID:          userID,
		ProductID:       productID,
		Credits:         product.Credits,
		PriceCents:      product.PriceCents,
		StripeSessionID: session.ID,
		Status:          models.PurchaseStatusPending,
	}

	if err := s.purchases.Create(purchase); err != nil {
		s.logger.Error("failed to record pending purchase",
			zap.String("session_id", session.ID), zap.Error(err))
		return nil, apperror.Internal("Failed to record purchase")
	}

	return &models.CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// HandleStripeWebhook checkout sonucunu işler. Tamamlanmış session için
// krediler atomik increment ile verilir ve audit kaydı düşülür.
func (s *PaymentService) HandleStripeWebhook(event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		purchase, err := s.purchases.GetBySessionID(session.ID)
		if err != nil {
			return err
		}

		// Stripe webhook'ları aynı session için birden çok kez (ve
		// eşzamanlı) teslim edebilir. Koşullu update sayesinde kaydı
		// yalnızca bir teslimat claim eder, gerisi kredi vermeden döner.
		claimed, err := s.purchases.MarkCompleted(session.ID)
		if err != nil {
			return err
		}
		if !claimed {
			return nil
		}

		if _, _, err := s.ledger.AddCredits(purchase.UserID, purchase.Credits, true); err != nil {
			return fmt.Errorf("failed to apply credits: %w", err)
		}

		if err := s.audit.Append(&models.PurchaseAttempt{
			UserID:       purchase.UserID,
			ProductID:    purchase.ProductID,
			Credits:      purchase.Credits,
			ReceiptToken: receipt.Token(session.ID),
			Platform:     models.PlatformWeb,
			Status:       models.AttemptStatusVerified,
		}); err != nil {
			s.logger.Error("failed to append web purchase record",
				zap.String("session_id", session.ID), zap.Error(err))
		}

		s.logger.Info("web purchase completed",
			zap.String("user_id", purchase.UserID),
			zap.String("product_id", purchase.ProductID),
			zap.Int("credits", purchase.Credits),
		)
		return nil

	case "checkout.session.expired", "checkout.session.async_payment_failed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return err
		}

		purchase, err := s.purchases.GetBySessionID(session.ID)
		if err != nil {
			return err
		}

		purchase.Status = models.PurchaseStatusFailed
		return s.purchases.Update(purchase)
	}

	return nil
}
