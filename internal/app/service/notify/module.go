package notify

import (
	"go.uber.org/fx"

	"github.com/dreamdecode/backend/internal/app/service/dream"
)

// Module exposes the delivery queue via Fx. The queue doubles as the dream
// service's dispatcher.
var Module = fx.Options(
	fx.Provide(func(s *AttemptLog) AttemptStore { return s }),
	fx.Provide(NewAttemptLog),
	fx.Provide(NewQueue),
	fx.Provide(func(q *Queue) dream.Dispatcher { return q }),
	fx.Invoke(registerLifecycle),
)
