//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/transport/cli"
	"hotel/transport/cli/router"

	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	hotelRepository "hotel/internal/domains/hotel/repository"
	hotelService "hotel/internal/domains/hotel/service"
	repairRepository "hotel/internal/domains/repair/repository"
	repairService "hotel/internal/domains/repair/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"

	"github.com/google/wire"

	bookingHandler "hotel/internal/handlers/booking"
	hotelHandler "hotel/internal/handlers/hotel"
	repairHandler "hotel/internal/handlers/repair"
	roomHandler "hotel/internal/handlers/room"
	userHandler "hotel/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	wire.Bind(new(postgres.Client), new(*postgres.Connection)),
	wire.Bind(new(cli.Closer), new(*postgres.Connection)),
)

var console = wire.NewSet(
	cli.NewInput,
	cli.NewResponse,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var repairDomain = wire.NewSet(
	repairRepository.New,
	repairService.New,
)

var domains = wire.NewSet(
	userDomain,
	hotelDomain,
	roomDomain,
	bookingDomain,
	repairDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	repairHandler.New,
	router.New,
)

func InitializeCLI(conn *postgres.Connection, otl otel.Otel, terminal cli.Console) *cli.CLI {
	wire.Build(
		configurations,
		infrastructures,
		console,
		domains,
		routing,
		cli.New,
	)

	return &cli.CLI{}
}
