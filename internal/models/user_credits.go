package models

import (
	"time"
)

// UserCredits kullanıcının kredi bakiyesini tutar. Bakiye sadece atomik
// increment ile değişir, asla okunup geri yazılmaz.
type UserCredits struct {
	UserID       string    `json:"user_id" gorm:"primaryKey"`
	Credits      int       `json:"credits" gorm:"not null;default:0"`
	Premium      bool      `json:"premium" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	LastUpdated  time.Time `json:"last_updated"`
	LastPurchase time.Time `json:"last_purchase"`
}

type AddCreditsRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Credits int    `json:"credits" validate:"required,gt=0"`
}

type AddCreditsResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	TotalCredits int    `json:"total_credits"`
	Created      bool   `json:"created"`
}

type UserInfoResponse struct {
	Exists   bool         `json:"exists"`
	UserData *UserCredits `json:"user_data,omitempty"`
}
