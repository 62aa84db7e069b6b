package components

import (
	"oceanview/internal/domain/reservation"
	"oceanview/internal/pkg/clock"
	"oceanview/internal/pkg/config"
	"oceanview/internal/usecase/commands"
	"oceanview/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewStandardPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			reservationRepo commands.ReservationRepository,
			roomRepo commands.RoomRepository,
			overlap commands.OverlapChecker,
			factory *reservation.Factory,
			cfg config.Config,
			pool *pgxpool.Pool,
			c clock.Clock,
		) commands.BookingCommands {
			return commands.NewBookingCommands(reservationRepo, roomRepo, overlap, factory, cfg.Pricing, pool, c)
		},
		commands.NewRoomCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewRoomQueries,
	),
)
