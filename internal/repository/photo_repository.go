package repository

import (
	"github.com/google/uuid"
	"github.com/photoglow/photoglow-backend/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{
		db: db,
	}
}

func (r *PhotoRepository) Create(photo *models.Photo) error {
	if photo.ID == "" {
		photo.ID = uuid.NewString()
	}
	return r.db.Create(photo).Error
}

func (r *PhotoRepository) GetByID(id string) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.First(&photo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListByUserOrdered sahibe göre filtrelenmiş, oluşturma zamanına göre
// azalan sıralı sorgu. Destekleyen index yoksa hata döner; sıralamasız
// fallback servis katmanında.
func (r *PhotoRepository) ListByUserOrdered(userID string, limit int) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) ListByUser(userID string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("user_id = ?", userID).Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) Delete(id string) error {
	return r.db.Delete(&models.Photo{}, "id = ?", id).Error
}
