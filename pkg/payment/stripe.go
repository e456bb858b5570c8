package payment

import (
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/checkout/session"
	"github.com/stripe/stripe-go/v74/price"
	"github.com/stripe/stripe-go/v74/product"
)

type StripeService struct {
	secretKey  string
	successURL string
	cancelURL  string
}

func NewStripeService(secretKey, successURL, cancelURL string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{
		secretKey:  secretKey,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

func (s *StripeService) CreateCheckoutSession(productName string, priceCents int64, metadata map[string]string) (*stripe.CheckoutSession, error) {
	// Stripe'da geçici product oluştur
	prod, err := product.New(&stripe.ProductParams{
		Name:        stripe.String(productName),
		Description: stripe.String(fmt.Sprintf("%s credit package", productName)),
	})
	if err != nil {
		return nil, err
	}

	// Product için price oluştur
	p, err := price.New(&stripe.PriceParams{
		Product:    stripe.String(prod.ID),
		UnitAmount: stripe.Int64(priceCents),
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
	})
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(p.ID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
	}

	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	return session.New(params)
}
