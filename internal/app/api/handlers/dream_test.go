package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/dreamdecode/backend/internal/app/service/dream"
	"github.com/dreamdecode/backend/pkg/types"
)

// stubManager returns canned results per operation; nil error fields mean the
// happy path.
type stubManager struct {
	submit   *dream.SubmitResult
	referral *dream.ReferralInfo
	checkout *dream.CheckoutResult
	verify   *dream.VerifyResult
	document *dream.Document
	err      error
}

func (s *stubManager) Submit(_ context.Context, _ *dream.SubmitRequest) (*dream.SubmitResult, error) {
	return s.submit, s.err
}

func (s *stubManager) LookupReferral(_ context.Context, _ string) (*dream.ReferralInfo, error) {
	return s.referral, s.err
}

func (s *stubManager) CreateCheckout(_ context.Context, _ string) (*dream.CheckoutResult, error) {
	return s.checkout, s.err
}

func (s *stubManager) VerifyPayment(_ context.Context, _, _ string) (*dream.VerifyResult, error) {
	return s.verify, s.err
}

func (s *stubManager) RenderDocument(_ context.Context, _ string) (*dream.Document, error) {
	return s.document, s.err
}

func newRouter(mgr dream.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterDreamRoutes(r, mgr)
	RegisterHealthRoutes(r)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApiSubmitDream_OK(t *testing.T) {
	mgr := &stubManager{submit: &dream.SubmitResult{
		DreamID:         "d-1",
		ReferralCode:    "ABCD2345",
		Teaser:          "The golden river stirs...",
		HebrewYear:      5786,
		DiscountApplied: true,
		Price:           8.5,
	}}
	r := newRouter(mgr)

	w := postJSON(t, r, "/submit-dream", map[string]any{
		"name": "Hannah", "email": "hannah@example.com", "dream_text": "a golden river",
		"referral_code": "FRIEND01",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got dream.SubmitResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "d-1", got.DreamID)
	require.Equal(t, "ABCD2345", got.ReferralCode)
	require.True(t, got.DiscountApplied)
	require.Equal(t, 8.5, got.Price)
}

func TestApiSubmitDream_RejectsMalformedBody(t *testing.T) {
	r := newRouter(&stubManager{})
	w := postJSON(t, r, "/submit-dream", map[string]any{"name": "Hannah"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "detail")
}

func TestApiLookupReferral_OK(t *testing.T) {
	mgr := &stubManager{referral: &dream.ReferralInfo{
		ReferrerName:    "Ruth",
		ReferrerPreview: "A blessed vision",
		DiscountActive:  true,
		DiscountPercent: 50,
		Message:         "Your friend Ruth has blessed you",
	}}
	r := newRouter(mgr)

	req := httptest.NewRequest(http.MethodGet, "/referral/ABCD2345", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"discount_percent":50`)
	require.Contains(t, w.Body.String(), "Ruth")
}

func TestApiLookupReferral_UnknownCode(t *testing.T) {
	r := newRouter(&stubManager{err: dream.ErrReferralNotFound})
	req := httptest.NewRequest(http.MethodGet, "/referral/NOPE0000", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Blessing code not found")
}

func TestApiCreateCheckoutSession_OK(t *testing.T) {
	mgr := &stubManager{checkout: &dream.CheckoutResult{URL: "https://pay.example.com/cs_1", Amount: 17}}
	r := newRouter(mgr)

	w := postJSON(t, r, "/create-checkout-session", map[string]any{"dream_id": "d-1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "https://pay.example.com/cs_1")
}

func TestApiCreateCheckoutSession_UnknownDream(t *testing.T) {
	r := newRouter(&stubManager{err: dream.ErrDreamNotFound})
	w := postJSON(t, r, "/create-checkout-session", map[string]any{"dream_id": "missing"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestApiVerifyPayment_Paid(t *testing.T) {
	mgr := &stubManager{verify: &dream.VerifyResult{
		Status:  dream.VerifyStatusPaid,
		Report:  &types.DreamReport{Prayer: "amen"},
		Message: "Your revelation has been emailed to you",
	}}
	r := newRouter(mgr)

	w := postJSON(t, r, "/verify-payment", map[string]any{"session_id": "cs_1", "dream_id": "d-1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"paid"`)
	require.Contains(t, w.Body.String(), `"prayer":"amen"`)
}

func TestApiVerifyPayment_Unpaid(t *testing.T) {
	mgr := &stubManager{verify: &dream.VerifyResult{Status: dream.VerifyStatusUnpaid}}
	r := newRouter(mgr)

	w := postJSON(t, r, "/verify-payment", map[string]any{"session_id": "cs_1", "dream_id": "d-1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"unpaid"`)
	require.NotContains(t, w.Body.String(), "report")
}

func TestApiVerifyPayment_ProviderError(t *testing.T) {
	r := newRouter(&stubManager{err: context.DeadlineExceeded})
	w := postJSON(t, r, "/verify-payment", map[string]any{"session_id": "cs_1", "dream_id": "d-1"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApiDownloadPDF_OK(t *testing.T) {
	mgr := &stubManager{document: &dream.Document{
		Filename: "dream-revelation-d-1.pdf",
		Content:  []byte("%PDF-1.4 fake"),
	}}
	r := newRouter(mgr)

	req := httptest.NewRequest(http.MethodGet, "/download-pdf/d-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	require.Contains(t, w.Header().Get("Content-Disposition"), "dream-revelation-d-1.pdf")
}

func TestApiDownloadPDF_NotPaid(t *testing.T) {
	r := newRouter(&stubManager{err: dream.ErrReportNotFound})
	req := httptest.NewRequest(http.MethodGet, "/download-pdf/d-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Report not found")
}

func TestHealth(t *testing.T) {
	r := newRouter(&stubManager{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
	require.Contains(t, w.Body.String(), "hebrew_year")
}
