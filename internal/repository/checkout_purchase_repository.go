package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/photoglow/photoglow-backend/internal/models"
	"gorm.io/gorm"
)

type CheckoutPurchaseRepository struct {
	db *gorm.DB
}

func NewCheckoutPurchaseRepository(db *gorm.DB) *CheckoutPurchaseRepository {
	return &CheckoutPurchaseRepository{
		db: db,
	}
}

func (r *CheckoutPurchaseRepository) Create(purchase *models.CheckoutPurchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.NewString()
	}
	return r.db.Create(purchase).Error
}

func (r *CheckoutPurchaseRepository) GetBySessionID(sessionID string) (*models.CheckoutPurchase, error) {
	var purchase models.CheckoutPurchase
	err := r.db.Where("stripe_session_id = ?", sessionID).First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *CheckoutPurchaseRepository) Update(purchase *models.CheckoutPurchase) error {
	return r.db.Save(purchase).Error
}

// MarkCompleted pending kaydı tek bir koşullu UPDATE ile completed yapar.
// false dönüyorsa kayıt zaten claim edilmiş demektir; aynı session için
// eşzamanlı webhook teslimatlarından yalnızca biri true alır.
func (r *CheckoutPurchaseRepository) MarkCompleted(sessionID string) (bool, error) {
	result := r.db.Model(&models.CheckoutPurchase{}).
		Where("stripe_session_id = ? AND status = ?", sessionID, models.PurchaseStatusPending).
		Updates(map[string]interface{}{
			"status":     models.PurchaseStatusCompleted,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
