package service

import (
	"context"

	"github.com/photoglow/photoglow-backend/internal/catalog"
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/pkg/apperror"
	"github.com/photoglow/photoglow-backend/pkg/receipt"
	"go.uber.org/zap"
)

type PurchaseService struct {
	dispatcher *receipt.Dispatcher
	catalog    *catalog.Catalog
	ledger     CreditLedger
	audit      AuditLog
	logger     *zap.Logger
}

func NewPurchaseService(
	dispatcher *receipt.Dispatcher,
	cat *catalog.Catalog,
	ledger CreditLedger,
	audit AuditLog,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		dispatcher: dispatcher,
		catalog:    cat,
		ledger:     ledger,
		audit:      audit,
		logger:     logger,
	}
}

// VerifyPurchase satın alma doğrulama workflow'u. Auth dışındaki her
// terminal dalda response üretilmeden önce tam bir audit kaydı yazılır.
// Receipt'in geçmemesi hata değil, success:false ile normal bir sonuçtur.
func (s *PurchaseService) VerifyPurchase(ctx context.Context, userID string, req models.VerifyPurchaseRequest) (*models.VerifyPurchaseResult, error) {
	logger := s.logger.With(
		zap.String("user_id", userID),
		zap.String("product_id", req.ProductID),
		zap.String("platform", req.Platform),
	)
	logger.Info("purchase verification started")

	verifier, ok := s.dispatcher.For(req.Platform)
	if !ok {
		appErr := apperror.InvalidArgument("Unsupported platform: " + req.Platform)
		s.appendAudit(userID, req, 0, models.AttemptStatusError, appErr.Message)
		return nil, appErr
	}
	logger.Info("verifier dispatched")

	valid := verifier.Verify(ctx, req.Receipt, req.ProductID)
	if !valid {
		s.appendAudit(userID, req, 0, models.AttemptStatusFailed, "")
		logger.Info("verification outcome", zap.String("status", models.AttemptStatusFailed))
		return &models.VerifyPurchaseResult{
			Success: false,
			Credits: 0,
			Message: "Receipt verification failed",
		}, nil
	}

	// Receipt geçerli olsa bile katalogda olmayan ürün kredi vermez.
	credits := s.catalog.Credits(req.ProductID)
	if credits <= 0 {
		s.appendAudit(userID, req, 0, models.AttemptStatusFailed, "unknown product id")
		return nil, apperror.InvalidArgument("Unknown product: " + req.ProductID)
	}

	if _, _, err := s.ledger.AddCredits(userID, credits, true); err != nil {
		s.appendAudit(userID, req, 0, models.AttemptStatusError, err.Error())
		logger.Error("credit grant failed", zap.Error(err))
		return nil, apperror.Internal("Failed to apply credits")
	}

	s.appendAudit(userID, req, credits, models.AttemptStatusVerified, "")
	logger.Info("verification outcome",
		zap.String("status", models.AttemptStatusVerified),
		zap.Int("credits", credits),
	)

	return &models.VerifyPurchaseResult{
		Success: true,
		Credits: credits,
		Message: "Purchase verified",
	}, nil
}

// GetPurchaseHistory kullanıcının kendi doğrulama denemelerini yeniden
// eskiye döner.
func (s *PurchaseService) GetPurchaseHistory(userID string) ([]models.PurchaseAttempt, error) {
	attempts, err := s.audit.GetByUserID(userID)
	if err != nil {
		s.logger.Error("failed to read purchase history",
			zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Internal("Failed to read purchase history")
	}
	return attempts, nil
}

func (s *PurchaseService) appendAudit(userID string, req models.VerifyPurchaseRequest, credits int, status, errMsg string) {
	attempt := &models.PurchaseAttempt{
		UserID:       userID,
		ProductID:    req.ProductID,
		Credits:      credits,
		ReceiptToken: receipt.Token(req.Receipt),
		Platform:     req.Platform,
		Status:       status,
		Error:        errMsg,
	}

	// Audit yazılamazsa yapılacak tek şey loglamak; kredi zaten uygulandıysa
	// satın almayı geri almayız.
	if err := s.audit.Append(attempt); err != nil {
		s.logger.Error("failed to append purchase attempt record",
			zap.String("user_id", userID),
			zap.String("status", status),
			zap.Error(err),
		)
	}
}
