package dream

import (
	"context"

	"github.com/dreamdecode/backend/pkg/types"
)

type SubmitRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	DreamText    string  `json:"dream_text" binding:"required"`
	Emotion      *string `json:"emotion"`
	Colors       *string `json:"colors"`
	Symbols      *string `json:"symbols"`
	ReferralCode string  `json:"referral_code"`
}

type SubmitResult struct {
	DreamID         string  `json:"dream_id"`
	ReferralCode    string  `json:"referral_code"`
	Teaser          string  `json:"teaser"`
	HebrewYear      int     `json:"hebrew_year"`
	DiscountApplied bool    `json:"discount_applied"`
	Price           float64 `json:"price"`
}

type ReferralInfo struct {
	ReferrerName    string `json:"referrer_name"`
	ReferrerPreview string `json:"referrer_preview"`
	DiscountActive  bool   `json:"discount_active"`
	DiscountPercent int    `json:"discount_percent"`
	Message         string `json:"message"`
}

type CheckoutResult struct {
	URL string `json:"url"`
	// Amount is in major currency units for display.
	Amount float64 `json:"amount"`
}

type VerifyStatus string

const (
	VerifyStatusPaid   VerifyStatus = "paid"
	VerifyStatusUnpaid VerifyStatus = "unpaid"
)

type VerifyResult struct {
	Status  VerifyStatus       `json:"status"`
	Report  *types.DreamReport `json:"report,omitempty"`
	Message string             `json:"message,omitempty"`
}

type Document struct {
	Filename string
	Content  []byte
}

// Manager is the dream lifecycle surface consumed by the HTTP handlers.
type Manager interface {
	Submit(ctx context.Context, req *SubmitRequest) (*SubmitResult, error)
	LookupReferral(ctx context.Context, code string) (*ReferralInfo, error)
	CreateCheckout(ctx context.Context, dreamID string) (*CheckoutResult, error)
	VerifyPayment(ctx context.Context, sessionID, dreamID string) (*VerifyResult, error)
	RenderDocument(ctx context.Context, dreamID string) (*Document, error)
}
