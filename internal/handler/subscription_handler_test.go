package handler_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/photoglow/photoglow-backend/internal/handler"
	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/photoglow/photoglow-backend/internal/service"
)

type stubEventStore struct {
	events []models.SubscriptionEvent
	err    error
}

func (s *stubEventStore) Append(event *models.SubscriptionEvent) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, *event)
	return nil
}

func subscriptionApp(store service.SubscriptionEventStore) *fiber.App {
	logger := zap.NewNop()
	h := handler.NewSubscriptionHandler(service.NewSubscriptionService(store, logger), logger)

	app := fiber.New()
	app.Post("/api/subscriptions/:platform", h.HandleSubscriptionUpdate)
	return app
}

func TestSubscriptionHandler_HandleSubscriptionUpdate(t *testing.T) {
	t.Run("returns plain OK and persists one event", func(t *testing.T) {
		store := &stubEventStore{}
		app := subscriptionApp(store)

		req := httptest.NewRequest("POST", "/api/subscriptions/ios", strings.NewReader(`{"notification_type":"DID_RENEW"}`))
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "OK", string(body))

		assert.Len(t, store.events, 1)
		assert.Equal(t, "ios", store.events[0].Platform)
		assert.Equal(t, `{"notification_type":"DID_RENEW"}`, store.events[0].Payload)
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		store := &stubEventStore{err: errors.New("connection reset")}
		app := subscriptionApp(store)

		req := httptest.NewRequest("POST", "/api/subscriptions/ios", strings.NewReader(`{}`))
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "Error", string(body))
		assert.Empty(t, store.events)
	})
}
