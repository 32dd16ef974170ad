package dream

import (
	"context"
	"time"

	"github.com/dreamdecode/backend/internal/models"
	"github.com/dreamdecode/backend/pkg/types"
)

// The external collaborators are modeled as narrow capabilities so tests can
// substitute deterministic fakes for the network-backed implementations.

// Interpreter produces natural-language interpretations of a dream record.
type Interpreter interface {
	// Teaser returns a short bounded-length preview of the interpretation.
	Teaser(ctx context.Context, d *models.Dream) (string, error)
	// FullReport returns the structured paid-tier report.
	FullReport(ctx context.Context, d *models.Dream) (*types.DreamReport, error)
}

type CheckoutParams struct {
	DreamID       string
	CustomerName  string
	CustomerEmail string
	AmountMinor   int64
}

type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentGateway opens hosted checkout sessions and reports their paid state.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error)
	SessionPaid(ctx context.Context, sessionID string) (bool, error)
}

// ReportRenderer turns a report into a downloadable document. Rendering is
// deterministic given the same name, report and timestamp; callers pass the
// payment time so regenerated documents match the original.
type ReportRenderer interface {
	Render(name string, report *types.DreamReport, at time.Time) ([]byte, error)
}

// Dispatcher hands deliveries to the fire-and-forget notify queue. Enqueue
// never blocks the payment transaction and delivery failure never rolls it
// back.
type Dispatcher interface {
	EnqueueReport(d *models.Dream, report *types.DreamReport, pdf []byte)
	EnqueueReferrerNotice(referrer *models.Dream, buyerName string)
}
