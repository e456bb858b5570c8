package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/photoglow/photoglow-backend/internal/models"
	"gorm.io/gorm"
)

type PurchaseAttemptRepository struct {
	db *gorm.DB
}

func NewPurchaseAttemptRepository(db *gorm.DB) *PurchaseAttemptRepository {
	return &PurchaseAttemptRepository{
		db: db,
	}
}

// Append audit kaydını yazar. Kayıtlar append-only: update/delete yok.
func (r *PurchaseAttemptRepository) Append(attempt *models.PurchaseAttempt) error {
	if attempt.ID == "" {
		attempt.ID = uuid.NewString()
	}
	if attempt.VerifiedAt.IsZero() {
		attempt.VerifiedAt = time.Now()
	}
	return r.db.Create(attempt).Error
}

func (r *PurchaseAttemptRepository) GetByUserID(userID string) ([]models.PurchaseAttempt, error) {
	var attempts []models.PurchaseAttempt
	err := r.db.Where("user_id = ?", userID).
		Order("verified_at DESC").
		Find(&attempts).Error
	return attempts, err
}
