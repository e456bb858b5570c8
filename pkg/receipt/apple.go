package receipt

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Status 21007: production endpoint'e gönderilmiş sandbox receipt —
// sandbox endpoint'te tekrar dene.
const statusSandboxReceipt = 21007

type appleVerifyRequest struct {
	ReceiptData            string `json:"receipt-data"`
	Password               string `json:"password"`
	ExcludeOldTransactions bool   `json:"exclude-old-transactions"`
}

type appleVerifyResponse struct {
	Status  int `json:"status"`
	Receipt *struct {
		InApp []appleInAppEntry `json:"in_app"`
	} `json:"receipt"`
}

type appleInAppEntry struct {
	ProductID     string `json:"product_id"`
	TransactionID string `json:"transaction_id"`
	PurchaseDate  string `json:"purchase_date"`
}

// Developer/test build'lerin network'e çıkmadan doğrulanabilmesi için
// receipt'in içinde aranan yapı.
type sandboxPayload struct {
	Environment string `json:"environment"`
	ProductID   string `json:"product_id"`
}

type AppleVerifier struct {
	client        *http.Client
	sharedSecret  string
	productionURL string
	sandboxURL    string
	logger        *zap.Logger
}

func NewAppleVerifier(sharedSecret, productionURL, sandboxURL string, logger *zap.Logger) *AppleVerifier {
	return &AppleVerifier{
		client:        &http.Client{Timeout: 30 * time.Second},
		sharedSecret:  sharedSecret,
		productionURL: productionURL,
		sandboxURL:    sandboxURL,
		logger:        logger,
	}
}

func (v *AppleVerifier) Verify(ctx context.Context, receiptData, productID string) bool {
	// Önce lokal sandbox kısayolu: receipt açıkça sandbox işaretli ve ürün
	// eşleşiyorsa network'e hiç çıkma.
	if v.isSandboxReceipt(receiptData, productID) {
		v.logger.Info("receipt verified via sandbox shortcut",
			zap.String("product_id", productID))
		return true
	}

	resp, err := v.sendVerifyRequest(ctx, v.productionURL, receiptData)
	if err != nil {
		v.logger.Warn("apple receipt verification failed",
			zap.String("product_id", productID), zap.Error(err))
		return false
	}

	if resp.Status == statusSandboxReceipt {
		resp, err = v.sendVerifyRequest(ctx, v.sandboxURL, receiptData)
		if err != nil {
			v.logger.Warn("apple sandbox verification failed",
				zap.String("product_id", productID), zap.Error(err))
			return false
		}
	}

	if resp.Status != 0 {
		v.logger.Info("apple rejected receipt",
			zap.String("product_id", productID), zap.Int("status", resp.Status))
		return false
	}

	// Status 0 yetmez: receipt'in purchase listesinde istenen ürün de olmalı.
	if resp.Receipt == nil {
		return false
	}
	for _, entry := range resp.Receipt.InApp {
		if entry.ProductID == productID {
			return true
		}
	}

	v.logger.Info("receipt valid but product not in purchase list",
		zap.String("product_id", productID))
	return false
}

func (v *AppleVerifier) isSandboxReceipt(receiptData, productID string) bool {
	var payload sandboxPayload
	if err := json.Unmarshal([]byte(receiptData), &payload); err != nil {
		// Receipt base64 kodlu da olabilir
		decoded, decErr := base64.StdEncoding.DecodeString(receiptData)
		if decErr != nil {
			return false
		}
		if err := json.Unmarshal(decoded, &payload); err != nil {
			return false
		}
	}

	return strings.EqualFold(payload.Environment, "sandbox") && payload.ProductID == productID
}

func (v *AppleVerifier) sendVerifyRequest(ctx context.Context, verifyURL, receiptData string) (*appleVerifyResponse, error) {
	body, err := json.Marshal(appleVerifyRequest{
		ReceiptData:            receiptData,
		Password:               v.sharedSecret,
		ExcludeOldTransactions: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, verifyURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send verification request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("apple server returned error: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var verifyResponse appleVerifyResponse
	if err := json.Unmarshal(raw, &verifyResponse); err != nil {
		return nil, fmt.Errorf("failed to parse verification response: %w", err)
	}

	return &verifyResponse, nil
}
