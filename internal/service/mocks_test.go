package service_test

import (
	"context"
	"io"
	"net/url"
	"sync"

	"github.com/photoglow/photoglow-backend/internal/models"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockCreditLedger is a mock implementation of service.CreditLedger
type MockCreditLedger struct {
	mock.Mock
}

func (m *MockCreditLedger) GetByUserID(userID string) (*models.UserCredits, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserCredits), args.Error(1)
}

func (m *MockCreditLedger) AddCredits(userID string, amount int, stampPurchase bool) (int, bool, error) {
	args := m.Called(userID, amount, stampPurchase)
	return args.Int(0), args.Bool(1), args.Error(2)
}

// MockAuditLog is a mock implementation of service.AuditLog
type MockAuditLog struct {
	mock.Mock
}

func (m *MockAuditLog) Append(attempt *models.PurchaseAttempt) error {
	args := m.Called(attempt)
	return args.Error(0)
}

func (m *MockAuditLog) GetByUserID(userID string) ([]models.PurchaseAttempt, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PurchaseAttempt), args.Error(1)
}

// MockPhotoStore is a mock implementation of service.PhotoStore
type MockPhotoStore struct {
	mock.Mock
}

func (m *MockPhotoStore) GetByID(id string) (*models.Photo, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Photo), args.Error(1)
}

func (m *MockPhotoStore) ListByUserOrdered(userID string, limit int) ([]models.Photo, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoStore) ListByUser(userID string) ([]models.Photo, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Photo), args.Error(1)
}

func (m *MockPhotoStore) Create(photo *models.Photo) error {
	args := m.Called(photo)
	return args.Error(0)
}

func (m *MockPhotoStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCheckoutStore is a mock implementation of service.CheckoutStore
type MockCheckoutStore struct {
	mock.Mock
}

func (m *MockCheckoutStore) Create(purchase *models.CheckoutPurchase) error {
	args := m.Called(purchase)
	return args.Error(0)
}

func (m *MockCheckoutStore) GetBySessionID(sessionID string) (*models.CheckoutPurchase, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutPurchase), args.Error(1)
}

func (m *MockCheckoutStore) Update(purchase *models.CheckoutPurchase) error {
	args := m.Called(purchase)
	return args.Error(0)
}

func (m *MockCheckoutStore) MarkCompleted(sessionID string) (bool, error) {
	args := m.Called(sessionID)
	return args.Bool(0), args.Error(1)
}

// MockSubscriptionEventStore is a mock implementation of service.SubscriptionEventStore
type MockSubscriptionEventStore struct {
	mock.Mock
}

func (m *MockSubscriptionEventStore) Append(event *models.SubscriptionEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// fakeCheckoutStore is an in-memory checkout store with real conditional
// claim semantics, used for the concurrent webhook redelivery test.
type fakeCheckoutStore struct {
	mu        sync.Mutex
	purchases map[string]*models.CheckoutPurchase
}

func newFakeCheckoutStore(purchases ...*models.CheckoutPurchase) *fakeCheckoutStore {
	store := &fakeCheckoutStore{purchases: make(map[string]*models.CheckoutPurchase)}
	for _, p := range purchases {
		copied := *p
		store.purchases[p.StripeSessionID] = &copied
	}
	return store
}

func (f *fakeCheckoutStore) Create(purchase *models.CheckoutPurchase) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *purchase
	f.purchases[purchase.StripeSessionID] = &copied
	return nil
}

func (f *fakeCheckoutStore) GetBySessionID(sessionID string) (*models.CheckoutPurchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	purchase, ok := f.purchases[sessionID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *purchase
	return &copied, nil
}

func (f *fakeCheckoutStore) Update(purchase *models.CheckoutPurchase) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *purchase
	f.purchases[purchase.StripeSessionID] = &copied
	return nil
}

func (f *fakeCheckoutStore) MarkCompleted(sessionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	purchase, ok := f.purchases[sessionID]
	if !ok || purchase.Status != models.PurchaseStatusPending {
		return false, nil
	}
	purchase.Status = models.PurchaseStatusCompleted
	return true, nil
}

// fakeLedger is an in-memory ledger with real atomic-increment semantics,
// used for the concurrency additivity test.
type fakeLedger struct {
	mu       sync.Mutex
	balances map[string]int
}

func newFakeLedger(initial map[string]int) *fakeLedger {
	balances := make(map[string]int, len(initial))
	for k, v := range initial {
		balances[k] = v
	}
	return &fakeLedger{balances: balances}
}

func (f *fakeLedger) GetByUserID(userID string) (*models.UserCredits, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	credits, ok := f.balances[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.UserCredits{UserID: userID, Credits: credits}, nil
}

func (f *fakeLedger) AddCredits(userID string, amount int, stampPurchase bool) (int, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, existed := f.balances[userID]
	f.balances[userID] += amount
	return f.balances[userID], !existed, nil
}

// memAudit collects appended attempts.
type memAudit struct {
	mu       sync.Mutex
	attempts []models.PurchaseAttempt
}

func (a *memAudit) Append(attempt *models.PurchaseAttempt) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.attempts = append(a.attempts, *attempt)
	return nil
}

func (a *memAudit) GetByUserID(userID string) ([]models.PurchaseAttempt, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []models.PurchaseAttempt
	for _, att := range a.attempts {
		if att.UserID == userID {
			out = append(out, att)
		}
	}
	return out, nil
}

func (a *memAudit) byStatus(status string) []models.PurchaseAttempt {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []models.PurchaseAttempt
	for _, att := range a.attempts {
		if att.Status == status {
			out = append(out, att)
		}
	}
	return out
}

// fakeStorage records storage operations and can fail selected keys.
type fakeStorage struct {
	mu       sync.Mutex
	uploaded []string
	deleted  []string
	failKeys map[string]error
}

func (f *fakeStorage) Upload(ctx context.Context, key string, reader io.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploaded = append(f.uploaded, key)
	return f.failKeys[key]
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return f.failKeys[key]
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.photoglow.app/o/" + url.PathEscape(key) + "?alt=media"
}

func (f *fakeStorage) deletedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

// stubVerifier returns a fixed verification outcome.
type stubVerifier struct {
	valid bool
}

func (s stubVerifier) Verify(ctx context.Context, receiptData, productID string) bool {
	return s.valid
}
