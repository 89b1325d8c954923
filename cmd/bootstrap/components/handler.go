package components

import (
	"lesson-booking/internal/handler"
	"lesson-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLessonHandler,
		api.NewOrderHandler,
	),
	fx.Invoke(handler.NewRouter),
)
