package service

import (
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/pkg/apperror"
	"go.uber.org/zap"
)

// SubscriptionService store tarafından gönderilen server-to-server abonelik
// bildirimlerini ham olarak kaydeder.
type SubscriptionService struct {
	events SubscriptionEventStore
	logger *zap.Logger
}

func NewSubscriptionService(events SubscriptionEventStore, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{
		events: events,
		logger: logger,
	}
}

func (s *SubscriptionService) HandleUpdate(platform string, payload []byte) error {
	if platform == "" {
		return apperror.InvalidArgument("Platform is required")
	}

	s.logger.Info("subscription update received",
		zap.String("platform", platform),
		zap.Int("payload_bytes", len(payload)),
	)

	return s.events.Append(&models.SubscriptionEvent{
		Platform: platform,
		Payload:  string(payload),
	})
}
