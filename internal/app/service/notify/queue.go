package notify

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/dreamdecode/backend/internal/app/service/dream"
	"github.com/dreamdecode/backend/internal/models"
	"github.com/dreamdecode/backend/pkg/metrics"
	"github.com/dreamdecode/backend/pkg/types"
)

// Mailer sends the actual emails. The sendgrid implementation lives in
// internal/platform/sendgridmail.
type Mailer interface {
	SendDreamReport(ctx context.Context, to, name string, report *types.DreamReport, pdf []byte, referralCode string) error
	SendReferrerNotice(ctx context.Context, to, name, buyerName string) error
}

// AttemptStore records every delivery attempt.
type AttemptStore interface {
	Record(ctx context.Context, entry *models.DeliveryLog)
}

type task struct {
	kind      models.DeliveryKind
	dreamID   string
	recipient string
	name      string
	code      string
	buyerName string
	report    *types.DreamReport
	pdf       []byte
}

// Queue decouples email delivery from the request/response cycle. Tasks are
// accepted without blocking; a failed delivery is recorded and logged, never
// returned to the enqueuer. There is no ordering guarantee relative to the
// HTTP response that triggered the task.
type Queue struct {
	log    *zap.SugaredLogger
	mailer Mailer
	store  AttemptStore

	ch     chan task
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

const queueDepth = 64

func NewQueue(log *zap.SugaredLogger, mailer Mailer, store AttemptStore) *Queue {
	return &Queue{log: log, mailer: mailer, store: store, ch: make(chan task, queueDepth)}
}

var _ dream.Dispatcher = (*Queue)(nil)

func (q *Queue) EnqueueReport(d *models.Dream, report *types.DreamReport, pdf []byte) {
	q.enqueue(task{
		kind:      models.DeliveryKindReport,
		dreamID:   d.ID,
		recipient: d.Email,
		name:      d.Name,
		code:      d.ReferralCode,
		report:    report,
		pdf:       pdf,
	})
}

func (q *Queue) EnqueueReferrerNotice(referrer *models.Dream, buyerName string) {
	q.enqueue(task{
		kind:      models.DeliveryKindReferrerNotice,
		dreamID:   referrer.ID,
		recipient: referrer.Email,
		name:      referrer.Name,
		buyerName: buyerName,
	})
}

func (q *Queue) enqueue(t task) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		// A payment can commit while the server drains after Stop; deliver
		// the late task inline instead of sending on the closed channel.
		q.process(t)
		return
	}
	select {
	case q.ch <- t:
		q.mu.Unlock()
	default:
		q.mu.Unlock()
		// Deliver inline rather than drop when the queue is saturated.
		q.wg.Add(1)
		go func() {
			defer q.wg.Done()
			q.process(t)
		}()
	}
}

// Start launches the worker. Stop closes the queue and waits for in-flight
// deliveries.
func (q *Queue) Start() {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for t := range q.ch {
			q.process(t)
		}
	}()
}

func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
	q.mu.Unlock()
	q.wg.Wait()
}

func (q *Queue) process(t task) {
	ctx := context.Background()
	var err error
	switch t.kind {
	case models.DeliveryKindReport:
		err = q.mailer.SendDreamReport(ctx, t.recipient, t.name, t.report, t.pdf, t.code)
	case models.DeliveryKindReferrerNotice:
		err = q.mailer.SendReferrerNotice(ctx, t.recipient, t.name, t.buyerName)
	default:
		q.log.Errorw("unknown delivery kind", "kind", t.kind)
		return
	}

	entry := &models.DeliveryLog{
		DreamID:   t.dreamID,
		Kind:      t.kind,
		Recipient: t.recipient,
		Status:    models.DeliveryLogStatusSent,
	}
	if detail, merr := json.Marshal(map[string]string{"buyer_name": t.buyerName}); merr == nil && t.buyerName != "" {
		entry.Detail = datatypes.JSON(detail)
	}
	if err != nil {
		entry.Status = models.DeliveryLogStatusSendFailed
		entry.Error = lo.ToPtr(err.Error())
		q.log.Errorw("delivery failed", "kind", t.kind, "dream_id", t.dreamID, "err", err)
	} else {
		q.log.Infow("delivery sent", "kind", t.kind, "dream_id", t.dreamID)
	}
	metrics.Deliveries.WithLabelValues(string(t.kind), string(entry.Status)).Inc()
	q.store.Record(ctx, entry)
}

func registerLifecycle(lc fx.Lifecycle, q *Queue) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error { q.Start(); return nil },
		OnStop:  func(context.Context) error { q.Stop(); return nil },
	})
}
