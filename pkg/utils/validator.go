package utils

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("supported_image", validateImageType)
	v.RegisterValidation("platform", validatePlatform)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// IsSupportedImageType upload edilen dosyanın MIME tipini kontrol eder.
func IsSupportedImageType(mimeType string) bool {
	return supportedImageTypes[mimeType]
}

func validateImageType(fl validator.FieldLevel) bool {
	return IsSupportedImageType(fl.Field().String())
}

// Store receipt'i olan platformlar. Web satın alma Stripe webhook'u
// üzerinden yürür, verify isteğine girmez.
var receiptPlatforms = map[string]bool{
	"ios":     true,
	"android": true,
}

func validatePlatform(fl validator.FieldLevel) bool {
	return receiptPlatforms[fl.Field().String()]
}
