package dream

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dreamdecode/backend/internal/models"
	"github.com/dreamdecode/backend/pkg/config"
	"github.com/dreamdecode/backend/pkg/logctx"
	"github.com/dreamdecode/backend/pkg/metrics"
	"github.com/dreamdecode/backend/pkg/tool"
	"github.com/dreamdecode/backend/pkg/types"
)

// maxCodeAttempts bounds the retry loop for referral-code collisions. With an
// 8-char code over a 32-char alphabet a second collision in a row means the
// generator is broken, not unlucky.
const maxCodeAttempts = 5

type Service struct {
	cfg        *config.Config
	log        *zap.SugaredLogger
	db         *gorm.DB
	interp     Interpreter
	pay        PaymentGateway
	renderer   ReportRenderer
	dispatcher Dispatcher
	newCode    func() string
}

func NewService(cfg *config.Config, log *zap.SugaredLogger, db *gorm.DB, interp Interpreter, pay PaymentGateway, renderer ReportRenderer, dispatcher Dispatcher) Manager {
	return &Service{
		cfg: cfg, log: log, db: db,
		interp: interp, pay: pay, renderer: renderer, dispatcher: dispatcher,
		newCode: tool.GenerateReferralCode,
	}
}

// Submit generates a teaser and persists a new pending dream. The referrer, if
// any, is only read here; its counters move when the referred dream pays.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*SubmitResult, error) {
	var referrer *models.Dream
	if req.ReferralCode != "" {
		var d models.Dream
		err := s.db.WithContext(ctx).Where("referral_code = ?", req.ReferralCode).First(&d).Error
		switch {
		case err == nil:
			referrer = &d
		case errors.Is(err, gorm.ErrRecordNotFound):
			// unknown code: treat as an unreferred submission
		default:
			return nil, fmt.Errorf("failed to resolve referral code: %w", err)
		}
	}

	record := &models.Dream{
		ID:        tool.GenerateUUIDV7(),
		Name:      req.Name,
		Email:     req.Email,
		DreamText: req.DreamText,
		Emotion:   req.Emotion,
		Colors:    req.Colors,
		Symbols:   req.Symbols,
		Status:    types.DreamStatusPending,
	}
	if referrer != nil {
		record.ReferredBy = lo.ToPtr(referrer.ID)
		record.DiscountApplied = true
	}

	teaser, err := s.interp.Teaser(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to generate teaser: %w", err)
	}
	record.Teaser = teaser

	if err := s.createWithFreshCode(ctx, record); err != nil {
		return nil, err
	}

	metrics.DreamsSubmitted.WithLabelValues(strconv.FormatBool(referrer != nil)).Inc()
	logctx.FromCtx(ctx, s.log).Infow("dream submitted",
		"dream_id", record.ID, "discount_applied", record.DiscountApplied)

	return &SubmitResult{
		DreamID:         record.ID,
		ReferralCode:    record.ReferralCode,
		Teaser:          record.Teaser,
		HebrewYear:      tool.HebrewYear(time.Now()),
		DiscountApplied: record.DiscountApplied,
		Price:           types.PriceMajor(types.PriceMinor(record.DiscountApplied)),
	}, nil
}

// createWithFreshCode inserts the record, regenerating the referral code when
// the uniqueness constraint rejects it. A collision is never surfaced to the
// caller.
func (s *Service) createWithFreshCode(ctx context.Context, record *models.Dream) error {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		record.ReferralCode = s.newCode()
		err := s.db.WithContext(ctx).Create(record).Error
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logctx.FromCtx(ctx, s.log).Warnw("referral code collision, retrying",
				"attempt", attempt+1, "code", record.ReferralCode)
			continue
		}
		return fmt.Errorf("failed to create dream: %w", err)
	}
	return fmt.Errorf("failed to create dream: referral code collisions exhausted %d attempts", maxCodeAttempts)
}

func (s *Service) LookupReferral(ctx context.Context, code string) (*ReferralInfo, error) {
	var referrer models.Dream
	if err := s.db.WithContext(ctx).Where("referral_code = ?", code).First(&referrer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferralNotFound
		}
		return nil, fmt.Errorf("failed to look up referral code: %w", err)
	}
	return &ReferralInfo{
		ReferrerName:    referrer.Name,
		ReferrerPreview: referrer.TeaserPreview(),
		DiscountActive:  true,
		DiscountPercent: types.ReferralDiscountPercent,
		Message: fmt.Sprintf("Your friend %s has blessed you with a %d%% discount on your dream interpretation. Like the loaves and fishes, this blessing multiplies when shared.",
			referrer.Name, types.ReferralDiscountPercent),
	}, nil
}

func (s *Service) CreateCheckout(ctx context.Context, dreamID string) (*CheckoutResult, error) {
	d, err := s.getDream(ctx, s.db, dreamID)
	if err != nil {
		return nil, err
	}

	amount := types.PriceMinor(d.DiscountApplied)
	sess, err := s.pay.CreateCheckoutSession(ctx, CheckoutParams{
		DreamID:       d.ID,
		CustomerName:  d.Name,
		CustomerEmail: d.Email,
		AmountMinor:   amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("checkout session created",
		"dream_id", d.ID, "session_id", sess.ID, "amount_minor", amount)

	return &CheckoutResult{URL: sess.URL, Amount: types.PriceMajor(amount)}, nil
}

// VerifyPayment is the only path that mutates status, full_report, paid_at,
// or referral_count. The dream row is locked for the whole verification so
// concurrent calls for the same dream serialize: the loser of the race
// observes the committed paid state and takes the fast path without touching
// the interpretation provider or the notify queue again.
func (s *Service) VerifyPayment(ctx context.Context, sessionID, dreamID string) (*VerifyResult, error) {
	log := logctx.FromCtx(ctx, s.log)

	var (
		result   *VerifyResult
		paidNow  *models.Dream
		referrer *models.Dream
		report   *types.DreamReport
		pdf      []byte
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d models.Dream
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", dreamID).First(&d).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDreamNotFound
			}
			return fmt.Errorf("failed to load dream: %w", err)
		}

		if d.Paid() {
			result = &VerifyResult{
				Status:  VerifyStatusPaid,
				Report:  d.FullReport.Data(),
				Message: "Report already generated",
			}
			return nil
		}

		paid, err := s.pay.SessionPaid(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("failed to retrieve checkout session: %w", err)
		}
		if !paid {
			result = &VerifyResult{Status: VerifyStatusUnpaid}
			return nil
		}

		now := time.Now()
		report, err = s.interp.FullReport(ctx, &d)
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
		pdf, err = s.renderer.Render(d.Name, report, now)
		if err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}

		updates := map[string]any{
			"status":      types.DreamStatusPaid,
			"paid_at":     now,
			"full_report": datatypes.NewJSONType(report),
		}
		if err := tx.Model(&models.Dream{}).Where("id = ?", d.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to mark dream paid: %w", err)
		}
		d.Status = types.DreamStatusPaid
		d.PaidAt = lo.ToPtr(now)
		d.FullReport = datatypes.NewJSONType(report)

		if d.ReferredBy != nil {
			if err := tx.Model(&models.Dream{}).Where("id = ?", *d.ReferredBy).
				UpdateColumn("referral_count", gorm.Expr("referral_count + 1")).Error; err != nil {
				return fmt.Errorf("failed to increment referral count: %w", err)
			}
			var r models.Dream
			if err := tx.Where("id = ?", *d.ReferredBy).First(&r).Error; err != nil {
				return fmt.Errorf("failed to load referrer: %w", err)
			}
			referrer = &r
		}

		paidNow = &d
		result = &VerifyResult{
			Status:  VerifyStatusPaid,
			Report:  report,
			Message: "Your revelation has been emailed to you",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deliveries are scheduled only after the transition commits, and only by
	// the call that performed it.
	if paidNow != nil {
		metrics.DreamsPaid.Inc()
		log.Infow("dream paid", "dream_id", paidNow.ID, "referred_by", paidNow.ReferredBy)
		s.dispatcher.EnqueueReport(paidNow, report, pdf)
		if referrer != nil {
			s.dispatcher.EnqueueReferrerNotice(referrer, paidNow.Name)
		}
	}
	return result, nil
}

// RenderDocument regenerates the PDF from the stored report on every call.
// Rendering at paid_at keeps the regenerated document identical to the one
// that was emailed.
func (s *Service) RenderDocument(ctx context.Context, dreamID string) (*Document, error) {
	d, err := s.getDream(ctx, s.db, dreamID)
	if err != nil {
		if errors.Is(err, ErrDreamNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	if !d.Paid() {
		return nil, ErrReportNotFound
	}
	at := time.Now()
	if d.PaidAt != nil {
		at = *d.PaidAt
	}
	content, err := s.renderer.Render(d.Name, d.FullReport.Data(), at)
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return &Document{
		Filename: fmt.Sprintf("dream-revelation-%s.pdf", d.ID),
		Content:  content,
	}, nil
}

func (s *Service) getDream(ctx context.Context, tx *gorm.DB, dreamID string) (*models.Dream, error) {
	var d models.Dream
	if err := tx.WithContext(ctx).Where("id = ?", dreamID).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDreamNotFound
		}
		return nil, fmt.Errorf("failed to load dream: %w", err)
	}
	return &d, nil
}
