package receipt

import (
	"context"

	"go.uber.org/zap"
)

// GoogleVerifier PLACEHOLDER bir doğrulayıcıdır: gerçek Play Developer API
// entegrasyonu gelene kadar asgari uzunlukta her receipt'i geçerli sayar.
// Production'da güvenli DEĞİLDİR.
type GoogleVerifier struct {
	logger *zap.Logger
}

func NewGoogleVerifier(logger *zap.Logger) *GoogleVerifier {
	return &GoogleVerifier{logger: logger}
}

const minReceiptLength = 16

func (v *GoogleVerifier) Verify(ctx context.Context, receiptData, productID string) bool {
	if len(receiptData) < minReceiptLength || productID == "" {
		return false
	}

	v.logger.Warn("android receipt accepted by placeholder verifier",
		zap.String("product_id", productID))
	return true
}
