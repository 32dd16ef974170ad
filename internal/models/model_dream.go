package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/dreamdecode/backend/pkg/types"
)

// Dream is one interpretation request and its outcome. Records are never
// deleted and never move back from paid to pending.
type Dream struct {
	ID        string  `gorm:"column:id;primary_key;type:uuid" json:"id"`
	Name      string  `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email     string  `gorm:"column:email;type:varchar(255);not null" json:"email"`
	DreamText string  `gorm:"column:dream_text;type:text;not null" json:"dream_text"`
	Emotion   *string `gorm:"column:emotion;type:varchar(50)" json:"emotion"`
	Colors    *string `gorm:"column:colors;type:varchar(100)" json:"colors"`
	Symbols   *string `gorm:"column:symbols;type:varchar(200)" json:"symbols"`

	// Teaser is generated once at submission time.
	Teaser string `gorm:"column:teaser;type:text" json:"teaser"`
	// FullReport is non-null iff Status is paid.
	FullReport datatypes.JSONType[*types.DreamReport] `gorm:"column:full_report;type:jsonb" json:"full_report"`

	// ReferralCode is immutable after creation.
	ReferralCode string `gorm:"column:referral_code;type:varchar(16);not null;uniqueIndex" json:"referral_code"`
	// ReferredBy holds the id of the dream that owned the referral code
	// supplied at submission time.
	ReferredBy      *string `gorm:"column:referred_by;type:uuid" json:"referred_by"`
	ReferralCount   int     `gorm:"column:referral_count;not null;default:0" json:"referral_count"`
	DiscountApplied bool    `gorm:"column:discount_applied;not null;default:false" json:"discount_applied"`

	Status types.DreamStatus `gorm:"column:status;type:varchar(20);not null;default:'pending'" json:"status"`
	PaidAt *time.Time        `gorm:"column:paid_at;default:null" json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Dream) TableName() string {
	return "dreams"
}

func (d *Dream) Paid() bool {
	return d != nil && d.Status == types.DreamStatusPaid && d.FullReport.Data() != nil
}

const teaserPreviewLen = 100

// TeaserPreview returns the truncated teaser shown on the referral landing
// page, or a fixed fallback when no teaser was stored.
func (d *Dream) TeaserPreview() string {
	if d == nil || d.Teaser == "" {
		return "A blessed vision"
	}
	if len(d.Teaser) <= teaserPreviewLen {
		return d.Teaser
	}
	return d.Teaser[:teaserPreviewLen] + "..."
}
