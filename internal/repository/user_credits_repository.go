package repository

import (
	"time"

	"github.com/photoglow/photoglow-backend/internal/models"
	"gorm.io/gorm"
)

type UserCreditsRepository struct {
	db *gorm.DB
}

func NewUserCreditsRepository(db *gorm.DB) *UserCreditsRepository {
	return &UserCreditsRepository{
		db: db,
	}
}

func (r *UserCreditsRepository) GetByUserID(userID string) (*models.UserCredits, error) {
	var record models.UserCredits
	err := r.db.First(&record, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// AddCredits bakiyeyi atomik olarak artırır; kayıt yoksa verilen bakiyeyle
// oluşturur. Yeni bakiye asla uygulama tarafında hesaplanıp geri yazılmaz —
// increment her zaman store'a relative olarak gönderilir.
func (r *UserCreditsRepository) AddCredits(userID string, amount int, stampPurchase bool) (int, bool, error) {
	now := time.Now()
	cols := map[string]interface{}{
		"credits":      gorm.Expr("credits + ?", amount),
		"last_updated": now,
	}
	if stampPurchase {
		cols["last_purchase"] = now
	}

	res := r.db.Model(&models.UserCredits{}).Where("user_id = ?", userID).UpdateColumns(cols)
	if res.Error != nil {
		return 0, false, res.Error
	}

	created := false
	if res.RowsAffected == 0 {
		record := &models.UserCredits{
			UserID:      userID,
			Credits:     amount,
			CreatedAt:   now,
			LastUpdated: now,
		}
		if stampPurchase {
			record.LastPurchase = now
		}

		if err := r.db.Create(record).Error; err != nil {
			// Eşzamanlı ilk satın alma: kayıt az önce başka bir istek
			// tarafından oluşturuldu, increment'i tekrar dene.
			res = r.db.Model(&models.UserCredits{}).Where("user_id = ?", userID).UpdateColumns(cols)
			if res.Error != nil {
				return 0, false, res.Error
			}
		} else {
			created = true
		}
	}

	var record models.UserCredits
	if err := r.db.First(&record, "user_id = ?", userID).Error; err != nil {
		return 0, created, err
	}

	return record.Credits, created, nil
}
