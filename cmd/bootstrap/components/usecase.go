package components

import (
	"almaaz-api/internal/pkg/clock"
	"almaaz-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewReservationUseCase,
		usecase.NewOrderUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewTokenValidator,
	),
)
