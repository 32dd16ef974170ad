package dream

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dreamdecode/backend/internal/models"
	"github.com/dreamdecode/backend/pkg/config"
	"github.com/dreamdecode/backend/pkg/types"
)

type fakeInterpreter struct {
	fullCalls int
}

func (f *fakeInterpreter) Teaser(_ context.Context, _ *models.Dream) (string, error) {
	return "A golden thread runs through your night vision, but...", nil
}

func (f *fakeInterpreter) FullReport(_ context.Context, _ *models.Dream) (*types.DreamReport, error) {
	f.fullCalls++
	return &types.DreamReport{
		Interpretations: []types.Interpretation{{Title: "The Revelation", Meaning: "A season opens."}},
		Scripture:       types.Scripture{Reference: "Genesis 41:25"},
		Prayer:          "amen",
	}, nil
}

type fakeGateway struct {
	paid bool
}

func (f *fakeGateway) CreateCheckoutSession(_ context.Context, p CheckoutParams) (*CheckoutSession, error) {
	return &CheckoutSession{ID: "cs_test", URL: "https://pay.test/cs_test?d=" + p.DreamID}, nil
}

func (f *fakeGateway) SessionPaid(_ context.Context, _ string) (bool, error) {
	return f.paid, nil
}

type fakeRenderer struct{}

func (fakeRenderer) Render(_ string, report *types.DreamReport, _ time.Time) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}
	return []byte("%PDF test"), nil
}

type fakeDispatcher struct {
	reports []string
	notices []string
}

func (d *fakeDispatcher) EnqueueReport(dr *models.Dream, _ *types.DreamReport, _ []byte) {
	d.reports = append(d.reports, dr.ID)
}

func (d *fakeDispatcher) EnqueueReferrerNotice(referrer *models.Dream, _ string) {
	d.notices = append(d.notices, referrer.ID)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Dream{}, &models.DeliveryLog{}))
	return db
}

func newTestService(t *testing.T, gw *fakeGateway) (*Service, *fakeInterpreter, *fakeDispatcher, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	interp := &fakeInterpreter{}
	disp := &fakeDispatcher{}
	cfg := &config.Config{PublicBaseURL: "http://localhost:3000"}
	svc := NewService(cfg, zap.NewNop().Sugar(), db, interp, gw, fakeRenderer{}, disp).(*Service)
	return svc, interp, disp, db
}

func submitReq(name, email, code string) *SubmitRequest {
	return &SubmitRequest{Name: name, Email: email, DreamText: "a river of gold", ReferralCode: code}
}

func TestSubmit_ReferralPricing(t *testing.T) {
	svc, _, _, db := newTestService(t, &fakeGateway{})
	ctx := context.Background()

	a, err := svc.Submit(ctx, submitReq("Ada", "ada@example.com", ""))
	require.NoError(t, err)
	require.False(t, a.DiscountApplied)
	require.Equal(t, 17.0, a.Price)
	require.Len(t, a.ReferralCode, 8)

	b, err := svc.Submit(ctx, submitReq("Boaz", "boaz@example.com", a.ReferralCode))
	require.NoError(t, err)
	require.True(t, b.DiscountApplied)
	require.Equal(t, 8.5, b.Price)

	var rec models.Dream
	require.NoError(t, db.First(&rec, "id = ?", b.DreamID).Error)
	require.NotNil(t, rec.ReferredBy)
	require.Equal(t, a.DreamID, *rec.ReferredBy)
}

func TestSubmit_UnknownCodeIsUnreferred(t *testing.T) {
	svc, _, _, _ := newTestService(t, &fakeGateway{})

	res, err := svc.Submit(context.Background(), submitReq("Ada", "ada@example.com", "NOPE2345"))
	require.NoError(t, err)
	require.False(t, res.DiscountApplied)
	require.Equal(t, 17.0, res.Price)
}

func TestCreateWithFreshCode_RetriesOnCollision(t *testing.T) {
	svc, _, _, _ := newTestService(t, &fakeGateway{})
	ctx := context.Background()

	svc.newCode = func() string { return "AAAA2222" }
	_, err := svc.Submit(ctx, submitReq("Ada", "ada@example.com", ""))
	require.NoError(t, err)

	// first draw collides with the existing row, the retry succeeds
	seq := []string{"AAAA2222", "BBBB3333"}
	i := 0
	svc.newCode = func() string { c := seq[i]; i++; return c }
	res, err := svc.Submit(ctx, submitReq("Boaz", "boaz@example.com", ""))
	require.NoError(t, err)
	require.Equal(t, "BBBB3333", res.ReferralCode)
}

func TestCreateWithFreshCode_ExhaustsAttempts(t *testing.T) {
	svc, _, _, _ := newTestService(t, &fakeGateway{})
	ctx := context.Background()

	svc.newCode = func() string { return "AAAA2222" }
	_, err := svc.Submit(ctx, submitReq("Ada", "ada@example.com", ""))
	require.NoError(t, err)

	_, err = svc.Submit(ctx, submitReq("Boaz", "boaz@example.com", ""))
	require.Error(t, err)
	require.Contains(t, err.Error(), "collisions")
}

func TestVerifyPayment_PaidFlow(t *testing.T) {
	svc, _, disp, db := newTestService(t, &fakeGateway{paid: true})
	ctx := context.Background()

	a, err := svc.Submit(ctx, submitReq("Ada", "ada@example.com", ""))
	require.NoError(t, err)
	b, err := svc.Submit(ctx, submitReq("Boaz", "boaz@example.com", a.ReferralCode))
	require.NoError(t, err)

	res, err := svc.VerifyPayment(ctx, "cs_test", b.DreamID)
	require.NoError(t, err)
	require.Equal(t, VerifyStatusPaid, res.Status)
	require.NotNil(t, res.Report)
	require.Equal(t, "Your revelation has been emailed to you", res.Message)

	var paid models.Dream
	require.NoError(t, db.First(&paid, "id = ?", b.DreamID).Error)
	require.Equal(t, types.DreamStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	require.NotNil(t, paid.FullReport.Data())

	var referrer models.Dream
	require.NoError(t, db.First(&referrer, "id = ?", a.DreamID).Error)
	require.Equal(t, 1, referrer.ReferralCount)

	require.Equal(t, []string{b.DreamID}, disp.reports)
	require.Equal(t, []string{a.DreamID}, disp.notices)
}

func TestVerifyPayment_Idempotent(t *testing.T) {
	svc, interp, disp, db := newTestService(t, &fakeGateway{paid: true})
	ctx := context.Background()

	a, err := svc.Submit(ctx, submitReq("Ada", "ada@example.com", ""))
	require.NoError(t, err)
	b, err := svc.Submit(ctx, submitReq("Boaz", "boaz@example.com", a.ReferralCode))
	require.NoError(t, err)

	first, err := svc.VerifyPayment(ctx, "cs_test", b.DreamID)
	require.NoError(t, err)
	second, err := svc.VerifyPayment(ctx, "cs_test", b.DreamID)
	require.NoError(t, err)

	require.Equal(t, VerifyStatusPaid, second.Status)
	require.Equal(t, "Report already generated", second.Message)
	require.Equal(t, first.Report, second.Report)

	// the second call touches neither the interpreter, the counter, nor the queue
	require.Equal(t, 1, interp.fullCalls)
	require.Len(t, disp.reports, 1)
	require.Len(t, disp.notices, 1)

	var referrer models.Dream
	require.NoError(t, db.First(&referrer, "id = ?", a.DreamID).Error)
	require.Equal(t, 1, referrer.ReferralCount)
}

func TestVerifyPayment_UnpaidNoMutation(t *testing.T) {
	svc, interp, disp, db := newTestService(t, &fakeGateway{paid: false})
	ctx := context.Background()

	sub, err := svc.Submit(ctx, submitReq("Ada", "ada@example.com", ""))
	require.NoError(t, err)

	res, err := svc.VerifyPayment(ctx, "cs_test", sub.DreamID)
	require.NoError(t, err)
	require.Equal(t, VerifyStatusUnpaid, res.Status)
	require.Nil(t, res.Report)

	var rec models.Dream
	require.NoError(t, db.First(&rec, "id = ?", sub.DreamID).Error)
	require.Equal(t, types.DreamStatusPending, rec.Status)
	require.Nil(t, rec.FullReport.Data())
	require.Equal(t, 0, interp.fullCalls)
	require.Empty(t, disp.reports)
}

func TestVerifyPayment_UnknownDream(t *testing.T) {
	svc, _, _, _ := newTestService(t, &fakeGateway{paid: true})

	_, err := svc.VerifyPayment(context.Background(), "cs_test", "no-such-dream")
	require.ErrorIs(t, err, ErrDreamNotFound)
}

func TestRenderDocument(t *testing.T) {
	svc, _, _, _ := newTestService(t, &fakeGateway{paid: true})
	ctx := context.Background()

	_, err := svc.RenderDocument(ctx, "no-such-dream")
	require.ErrorIs(t, err, ErrReportNotFound)

	sub, err := svc.Submit(ctx, submitReq("Ada", "ada@example.com", ""))
	require.NoError(t, err)

	_, err = svc.RenderDocument(ctx, sub.DreamID)
	require.ErrorIs(t, err, ErrReportNotFound)

	_, err = svc.VerifyPayment(ctx, "cs_test", sub.DreamID)
	require.NoError(t, err)

	doc, err := svc.RenderDocument(ctx, sub.DreamID)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("dream-revelation-%s.pdf", sub.DreamID), doc.Filename)
	require.NotEmpty(t, doc.Content)
}
