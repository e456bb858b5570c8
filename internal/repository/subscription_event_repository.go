package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/photoglow/photoglow-backend/internal/models"
	"gorm.io/gorm"
)

type SubscriptionEventRepository struct {
	db *gorm.DB
}

func NewSubscriptionEventRepository(db *gorm.DB) *SubscriptionEventRepository {
	return &SubscriptionEventRepository{
		db: db,
	}
}

func (r *SubscriptionEventRepository) Append(event *models.SubscriptionEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = time.Now()
	}
	return r.db.Create(event).Error
}
