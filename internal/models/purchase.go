package models

import "time"

const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

const (
	AttemptStatusVerified = "verified"
	AttemptStatusFailed   = "failed"
	AttemptStatusError    = "error"
)

// PurchaseAttempt her doğrulama denemesi için bir kayıt — başarılı,
// reddedilmiş veya hatalı farketmez. Append-only audit trail.
type PurchaseAttempt struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"not null;index"`
	ProductID    string    `json:"product_id" gorm:"not null"`
	Credits      int       `json:"credits" gorm:"not null;default:0"`
	ReceiptToken string    `json:"receipt_token"` // truncated, asla tam receipt değil
	Platform     string    `json:"platform" gorm:"not null"`
	Status       string    `json:"status" gorm:"not null"`
	Error        string    `json:"error,omitempty"`
	VerifiedAt   time.Time `json:"verified_at"`
}

type VerifyPurchaseRequest struct {
	Receipt   string `json:"receipt" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Platform  string `json:"platform" validate:"required,platform"`
}

// VerifyPurchaseResult doğrulamanın iş sonucu. Receipt'in geçmemesi bir
// hata değil, normal bir sonuçtur (success:false).
type VerifyPurchaseResult struct {
	Success bool   `json:"success"`
	Credits int    `json:"credits"`
	Message string `json:"message,omitempty"`
}

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusFailed    = "failed"
)

// CheckoutPurchase web (Stripe) kanalından yapılan satın almaların kaydı.
type CheckoutPurchase struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	UserID          string    `json:"user_id" gorm:"not null;index"`
	ProductID       string    `json:"product_id" gorm:"not null"`
	Credits         int       `json:"credits" gorm:"not null"`
	PriceCents      int64     `json:"price_cents" gorm:"not null"`
	StripeSessionID string    `json:"stripe_session_id" gorm:"unique;not null"`
	Status          string    `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
