package service

import (
	"github.com/photoglow/photoglow-backend/internal/models"
)

// CreditLedger kullanıcı bakiyesi üzerindeki tek mutasyon yolu.
type CreditLedger interface {
	GetByUserID(userID string) (*models.UserCredits, error)
	AddCredits(userID string, amount int, stampPurchase bool) (total int, created bool, err error)
}

// AuditLog append-only satın alma denemesi kaydı.
type AuditLog interface {
	Append(attempt *models.PurchaseAttempt) error
	GetByUserID(userID string) ([]models.PurchaseAttempt, error)
}

type PhotoStore interface {
	GetByID(id string) (*models.Photo, error)
	ListByUserOrdered(userID string, limit int) ([]models.Photo, error)
	ListByUser(userID string) ([]models.Photo, error)
	Create(photo *models.Photo) error
	Delete(id string) error
}

type CheckoutStore interface {
	Create(purchase *models.CheckoutPurchase) error
	GetBySessionID(sessionID string) (*models.CheckoutPurchase, error)
	Update(purchase *models.CheckoutPurchase) error
	// MarkCompleted pending kaydı koşullu olarak completed yapar; false
	// dönerse kayıt başka bir teslimat tarafından claim edilmiştir.
	MarkCompleted(sessionID string) (bool, error)
}

type SubscriptionEventStore interface {
	Append(event *models.SubscriptionEvent) error
}
