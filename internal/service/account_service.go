package service

import (
	"errors"
	"fmt"

	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/pkg/apperror"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AccountService self-only hesap operasyonları: kendi hesabına kredi ekleme
// (manuel/test yolu) ve profil okuma.
type AccountService struct {
	ledger CreditLedger
	logger *zap.Logger
}

func NewAccountService(ledger CreditLedger, logger *zap.Logger) *AccountService {
	return &AccountService{
		ledger: ledger,
		logger: logger,
	}
}

func (s *AccountService) AddCredits(callerID string, req models.AddCreditsRequest) (*models.AddCreditsResponse, error) {
	if req.UserID != callerID {
		return nil, apperror.PermissionDenied("You can only add credits to your own account")
	}
	if req.Credits <= 0 {
		return nil, apperror.InvalidArgument("Credits must be a positive number")
	}

	total, created, err := s.ledger.AddCredits(req.UserID, req.Credits, false)
	if err != nil {
		s.logger.Error("failed to add credits",
			zap.String("user_id", req.UserID), zap.Error(err))
		return nil, apperror.Internal("Failed to add credits")
	}

	return &models.AddCreditsResponse{
		Success:      true,
		Message:      fmt.Sprintf("Added %d credits", req.Credits),
		TotalCredits: total,
		Created:      created,
	}, nil
}

// GetInfo kaydı olmayan kullanıcı için hata değil exists:false döner.
func (s *AccountService) GetInfo(callerID, userID string) (*models.UserInfoResponse, error) {
	if userID == "" {
		return nil, apperror.InvalidArgument("User ID is required")
	}
	if userID != callerID {
		return nil, apperror.PermissionDenied("You can only view your own account")
	}

	record, err := s.ledger.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserInfoResponse{Exists: false}, nil
		}
		s.logger.Error("failed to read user record",
			zap.String("user_id", userID), zap.Error(err))
		return nil, apperror.Internal("Failed to read user record")
	}

	return &models.UserInfoResponse{
		Exists:   true,
		UserData: record,
	}, nil
}
