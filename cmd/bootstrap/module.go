package bootstrap

import (
	"lesson-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
