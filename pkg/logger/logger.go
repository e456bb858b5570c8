package logger

import (
	"os"

	"go.uber.org/zap"
)

// New ortam değişkenine göre production veya development logger kurar.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
