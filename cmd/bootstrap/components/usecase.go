package components

import (
	"lesson-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewLessonUseCase,
		usecase.NewOrderUseCase,
	),
)
