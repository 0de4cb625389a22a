package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/postgres"
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
	bookingHandler "hotel/internal/handlers/booking"
	hotelHandler "hotel/internal/handlers/hotel"
	repairHandler "hotel/internal/handlers/repair"
	roomHandler "hotel/internal/handlers/room"
	userHandler "hotel/internal/handlers/user"
	"hotel/transport/cli"
	"hotel/transport/cli/input"
	"hotel/transport/cli/response"
	"hotel/transport/cli/router"
)

func newCLI(t *testing.T, lines string) (*cli.CLI, sqlmock.Sqlmock, *bytes.Buffer) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	conn := postgres.NewFromDB(sqlx.NewDb(mockDB, "postgres"))
	cfg := &config.Config{}
	otl := otelMocks.NewOtel()

	var out bytes.Buffer

	in := input.New(strings.NewReader(lines), &out)
	res := response.New(&out, &out)

	hotels := hotelService.New(hotelRepository.New(conn, otl), cfg, otl)
	rooms := roomRepository.New(conn, otl)

	r := router.New(router.DomainHandlers{
		User:    userHandler.New(userService.New(userRepository.New(conn, otl), cfg, otl), in, res, otl),
		Hotel:   hotelHandler.New(hotels, in, res, otl),
		Room:    roomHandler.New(roomService.New(rooms, hotels, cfg, otl), in, res, otl),
		Booking: bookingHandler.New(bookingService.New(bookingRepository.New(conn, otl), rooms, hotels, cfg, otl), in, res, otl),
		Repair:  repairHandler.New(repairService.New(repairRepository.New(conn, otl), rooms, hotels, otl), in, res, otl),
	}, res)

	return cli.New(r, in, cli.Console{Out: &out}, conn), mock, &out
}

func TestCLI_Run_SignUpLogInViewRooms(t *testing.T) {
	script := strings.Join([]string{
		"1", "Alice", "pw1", // sign up
		"2", "1", "pw1", // log in
		"2", "1", "05/01/2024", // view rooms
		"20", // log out
		"9",  // exit
	}, "\n") + "\n"

	app, mock, out := newCLI(t, script)

	mock.ExpectExec(`INSERT INTO "users" \("name", "password", "usertype"\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs("Alice", "pw1", "customer").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT currval\(\$1\) AS "userid"`).
		WithArgs("users_userid_seq").
		WillReturnRows(sqlmock.NewRows([]string{"userid"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT "userid" FROM "users" WHERE`).
		WithArgs("pw1", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"userid"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT "usertype" FROM "users" WHERE`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"usertype"}).AddRow("customer"))
	mock.ExpectQuery(`FROM "rooms" AS "r"`).
		WillReturnRows(sqlmock.NewRows([]string{"roomnumber", "price", "availability"}).
			AddRow(int64(101), 120.0, "Available").
			AddRow(int64(102), 150.0, "Booked"))
	mock.ExpectClose()

	app.Run(context.Background())

	output := out.String()
	assert.Contains(t, output, "User Interface")
	assert.Contains(t, output, "User successfully created with userID = 1\n")
	assert.Contains(t, output, "4. View recent booking history\n")
	assert.Contains(t, output, "roomnumber\tprice\tavailability\n101\t120\tAvailable\n102\t150\tBooked\nTotal row(s): 2\n")
	assert.True(t, strings.HasSuffix(output, "Disconnecting from database...Done\n\nBye !\n"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCLI_Run_EndOfInput(t *testing.T) {
	app, mock, out := newCLI(t, "abc\n7\n")

	mock.ExpectClose()

	app.Run(context.Background())

	assert.Contains(t, out.String(), "Your input is invalid!\n")
	assert.Contains(t, out.String(), "Unrecognized choice!\n")
	assert.Contains(t, out.String(), "Bye !")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCLI_Run_Cancelled(t *testing.T) {
	app, mock, out := newCLI(t, "9\n")

	mock.ExpectClose()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app.Run(ctx)

	assert.NotContains(t, out.String(), "Please make your choice")
	assert.Contains(t, out.String(), "Bye !")
	assert.NoError(t, mock.ExpectationsWereMet())
}
