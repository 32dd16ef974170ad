package notify

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dreamdecode/backend/internal/models"
	"github.com/dreamdecode/backend/pkg/logctx"
	"github.com/dreamdecode/backend/pkg/tool"
)

type AttemptLog struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewAttemptLog(db *gorm.DB, log *zap.SugaredLogger) *AttemptLog {
	return &AttemptLog{db: db, log: log}
}

var _ AttemptStore = (*AttemptLog)(nil)

// Record persists a delivery log entry. Nil input is ignored; a write failure
// is logged and swallowed, the delivery outcome itself is authoritative.
func (s *AttemptLog) Record(ctx context.Context, entry *models.DeliveryLog) {
	if entry == nil {
		return
	}
	if entry.ID == "" {
		entry.ID = tool.GenerateUUIDV7()
	}
	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		logctx.FromCtx(ctx, s.log).Errorf("failed to save delivery log: %v", err)
	}
}
