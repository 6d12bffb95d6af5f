package components

import (
	"tripflow/internal/pkg/clock"
	"tripflow/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewQuoteResolver,
		usecase.NewWorkflowTracker,
		usecase.NewTripFlowUseCase,
	),
)
