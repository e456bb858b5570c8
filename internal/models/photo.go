package models

import (
	"time"
)

const (
	PhotoStatusProcessing = "processing"
	PhotoStatusDone       = "done"
	PhotoStatusError      = "error"
)

type Photo struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null;index"`
	OriginalURL string    `json:"original_url" gorm:"not null"`
	ResultURL   string    `json:"result_url"`
	Status      string    `json:"status" gorm:"not null;default:'processing'"`
	Theme       string    `json:"theme"`
	Analysis    string    `json:"analysis,omitempty"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PhotoListResponse struct {
	Photos []Photo `json:"photos"`
	Total  int     `json:"total"`
}
