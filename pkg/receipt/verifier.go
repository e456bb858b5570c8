// Package receipt store receipt'lerinin server-side doğrulamasını yapar.
package receipt

import (
	"context"
)

// Verifier tek bir platformun receipt doğrulayıcısı. Network veya parse
// hataları doğrulama başarısızlığı sayılır, hata olarak yükseltilmez.
type Verifier interface {
	Verify(ctx context.Context, receiptData, productID string) bool
}

// Dispatcher platform adına göre doğrulayıcı seçer.
type Dispatcher struct {
	verifiers map[string]Verifier
}

func NewDispatcher(verifiers map[string]Verifier) *Dispatcher {
	return &Dispatcher{verifiers: verifiers}
}

func (d *Dispatcher) For(platform string) (Verifier, bool) {
	v, ok := d.verifiers[platform]
	return v, ok
}

// Token audit kaydına yazılacak kısaltılmış receipt. Tam receipt asla
// loglanmaz.
func Token(receiptData string) string {
	const maxLen = 32
	if len(receiptData) <= maxLen {
		return receiptData
	}
	return receiptData[:maxLen] + "..."
}
