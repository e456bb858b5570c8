package receipt_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/photoglow/photoglow-backend/pkg/receipt"
)

type verifyRequest struct {
	ReceiptData            string `json:"receipt-data"`
	Password               string `json:"password"`
	ExcludeOldTransactions bool   `json:"exclude-old-transactions"`
}

func appleEndpoint(t *testing.T, status int, productIDs ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req verifyRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.ReceiptData)
		assert.True(t, req.ExcludeOldTransactions)

		resp := map[string]interface{}{"status": status}
		if status == 0 {
			var inApp []map[string]string
			for _, id := range productIDs {
				inApp = append(inApp, map[string]string{
					"product_id":     id,
					"transaction_id": "1000000000000001",
					"purchase_date":  "2025-06-01 12:00:00 Etc/GMT",
				})
			}
			resp["receipt"] = map[string]interface{}{"in_app": inApp}
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestAppleVerifier_Verify(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("production success with matching product", func(t *testing.T) {
		prod := appleEndpoint(t, 0, "pkg.credits10")
		defer prod.Close()

		v := receipt.NewAppleVerifier("secret", prod.URL, "http://unused.invalid", logger)
		assert.True(t, v.Verify(ctx, "b3BhcXVlLXJlY2VpcHQ=", "pkg.credits10"))
	})

	t.Run("valid receipt without the requested product fails", func(t *testing.T) {
		prod := appleEndpoint(t, 0, "pkg.other")
		defer prod.Close()

		v := receipt.NewAppleVerifier("secret", prod.URL, "http://unused.invalid", logger)
		assert.False(t, v.Verify(ctx, "b3BhcXVlLXJlY2VpcHQ=", "pkg.credits10"))
	})

	t.Run("status 21007 retries against sandbox", func(t *testing.T) {
		prod := appleEndpoint(t, 21007)
		defer prod.Close()
		sandbox := appleEndpoint(t, 0, "pkg.credits10")
		defer sandbox.Close()

		v := receipt.NewAppleVerifier("secret", prod.URL, sandbox.URL, logger)
		assert.True(t, v.Verify(ctx, "b3BhcXVlLXJlY2VpcHQ=", "pkg.credits10"))
	})

	t.Run("non-zero status fails", func(t *testing.T) {
		prod := appleEndpoint(t, 21003)
		defer prod.Close()

		v := receipt.NewAppleVerifier("secret", prod.URL, "http://unused.invalid", logger)
		assert.False(t, v.Verify(ctx, "b3BhcXVlLXJlY2VpcHQ=", "pkg.credits10"))
	})

	t.Run("network failure is a verification failure, not an error", func(t *testing.T) {
		dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		dead.Close() // kapalı endpoint

		v := receipt.NewAppleVerifier("secret", dead.URL, dead.URL, logger)
		assert.False(t, v.Verify(ctx, "b3BhcXVlLXJlY2VpcHQ=", "pkg.credits10"))
	})

	t.Run("malformed endpoint response fails closed", func(t *testing.T) {
		garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer garbage.Close()

		v := receipt.NewAppleVerifier("secret", garbage.URL, garbage.URL, logger)
		assert.False(t, v.Verify(ctx, "b3BhcXVlLXJlY2VpcHQ=", "pkg.credits10"))
	})
}

func TestAppleVerifier_SandboxShortcut(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	// Endpoint'e gidilirse test patlasın
	v := receipt.NewAppleVerifier("secret", "http://unreachable.invalid", "http://unreachable.invalid", logger)

	t.Run("sandbox-marked json receipt verifies locally", func(t *testing.T) {
		payload := `{"environment":"Sandbox","product_id":"pkg.credits10"}`
		assert.True(t, v.Verify(ctx, payload, "pkg.credits10"))
	})

	t.Run("base64 encoded sandbox receipt verifies locally", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString(
			[]byte(`{"environment":"sandbox","product_id":"pkg.credits10"}`))
		assert.True(t, v.Verify(ctx, payload, "pkg.credits10"))
	})

	t.Run("sandbox receipt for a different product does not shortcut", func(t *testing.T) {
		payload := `{"environment":"Sandbox","product_id":"pkg.other"}`
		assert.False(t, v.Verify(ctx, payload, "pkg.credits10"))
	})
}

func TestGoogleVerifier_Placeholder(t *testing.T) {
	logger := zap.NewNop()
	v := receipt.NewGoogleVerifier(logger)
	ctx := context.Background()

	assert.True(t, v.Verify(ctx, "a-plausible-android-receipt-token", "pkg.credits10"))
	assert.False(t, v.Verify(ctx, "short", "pkg.credits10"))
	assert.False(t, v.Verify(ctx, "a-plausible-android-receipt-token", ""))
}

func TestDispatcher(t *testing.T) {
	logger := zap.NewNop()
	d := receipt.NewDispatcher(map[string]receipt.Verifier{
		"android": receipt.NewGoogleVerifier(logger),
	})

	_, ok := d.For("android")
	assert.True(t, ok)

	_, ok = d.For("windows")
	assert.False(t, ok)
}

func TestToken(t *testing.T) {
	assert.Equal(t, "short-receipt", receipt.Token("short-receipt"))

	long := "0123456789012345678901234567890123456789"
	token := receipt.Token(long)
	assert.Len(t, token, 35)
	assert.NotEqual(t, long, token)
}
