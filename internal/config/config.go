package config

import (
	"os"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type AppleConfig struct {
	SharedSecret string
	// Test ortamında endpoint'leri override edebilmek için
	ProductionURL string
	SandboxURL    string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

type Config struct {
	DatabaseURL string
	Apple       AppleConfig
	Stripe      StripeConfig
	R2          R2Config
}

const (
	defaultAppleProductionURL = "https://buy.itunes.apple.com/verifyReceipt"
	defaultAppleSandboxURL    = "https://sandbox.itunes.apple.com/verifyReceipt"
)

func LoadConfig() *Config {
	cfg := &Config{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	// Apple receipt verification config
	cfg.Apple.SharedSecret = os.Getenv("APPLE_SHARED_SECRET")
	cfg.Apple.ProductionURL = getEnvOrDefault("APPLE_VERIFY_URL", defaultAppleProductionURL)
	cfg.Apple.SandboxURL = getEnvOrDefault("APPLE_SANDBOX_VERIFY_URL", defaultAppleSandboxURL)

	// Stripe config (web satın alma kanalı)
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Stripe.WebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	cfg.Stripe.SuccessURL = getEnvOrDefault("STRIPE_SUCCESS_URL", "https://photoglow.app/payment/success?session_id={CHECKOUT_SESSION_ID}")
	cfg.Stripe.CancelURL = getEnvOrDefault("STRIPE_CANCEL_URL", "https://photoglow.app/payment/cancel")

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
