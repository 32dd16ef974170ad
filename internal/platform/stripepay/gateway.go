package stripepay

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"go.uber.org/zap"

	"github.com/dreamdecode/backend/internal/app/service/dream"
	"github.com/dreamdecode/backend/pkg/config"
)

type Gateway struct {
	cfg *config.Config
	log *zap.SugaredLogger
	sc  *client.API
}

func NewGateway(cfg *config.Config, log *zap.SugaredLogger) dream.PaymentGateway {
	sc := &client.API{}
	sc.Init(cfg.Stripe.SecretKey, nil)
	return &Gateway{cfg: cfg, log: log, sc: sc}
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, p dream.CheckoutParams) (*dream.CheckoutSession, error) {
	// {CHECKOUT_SESSION_ID} is substituted by the payment provider on redirect.
	successURL := fmt.Sprintf("%s/reveal?session_id={CHECKOUT_SESSION_ID}&dream_id=%s", g.cfg.PublicBaseURL, p.DreamID)
	cancelURL := fmt.Sprintf("%s/cancel", g.cfg.PublicBaseURL)

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(successURL),
		CancelURL:          stripe.String(cancelURL),
		CustomerEmail:      stripe.String(p.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(p.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Complete Dream Revelation"),
						Description: stripe.String(fmt.Sprintf("Biblical interpretation for %s", p.CustomerName)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	sess, err := g.sc.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return &dream.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

func (g *Gateway) SessionPaid(ctx context.Context, sessionID string) (bool, error) {
	sess, err := g.sc.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return false, err
	}
	return sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}
