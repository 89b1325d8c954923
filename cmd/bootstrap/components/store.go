package components

import (
	"lesson-booking/internal/infra/repository"
	"lesson-booking/internal/pkg/clock"
	"lesson-booking/internal/usecase"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			repository.NewLessonRepository,
			fx.As(new(usecase.LessonStore)),
		),
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(usecase.OrderStore)),
		),
	),
)
