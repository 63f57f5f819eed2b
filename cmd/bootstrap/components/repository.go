package components

import (
	"almaaz-api/internal/domain/booking"
	"almaaz-api/internal/infra"
	repo_impl "almaaz-api/internal/infra/repository"
	"almaaz-api/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(usecase.OrderRepository)),
		),
		NewBookingGate,
	),
)

// NewBookingGate builds the claim gate backed by the store's partial unique
// indexes: inserts race freely and the loser surfaces as a duplicate-key
// error, which the gate reports as a claim conflict.
func NewBookingGate() booking.Gate {
	return booking.NewConstraintGate(func(err error) bool {
		return infra.IsKind(err, infra.KindDuplicateKey)
	})
}
