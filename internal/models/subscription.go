package models

import "time"

// SubscriptionEvent store/play tarafından gönderilen server-to-server
// bildirimlerin ham kaydı.
type SubscriptionEvent struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Platform   string    `json:"platform" gorm:"not null"`
	Payload    string    `json:"payload" gorm:"type:text"`
	ReceivedAt time.Time `json:"received_at"`
}
