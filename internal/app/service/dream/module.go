package dream

import "go.uber.org/fx"

// Module exposes the dream lifecycle service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
