package router_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	hotelMocks "hotel/internal/domains/hotel/mocks"
	repairMocks "hotel/internal/domains/repair/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	userMocks "hotel/internal/domains/user/mocks"
	bookingHandler "hotel/internal/handlers/booking"
	hotelHandler "hotel/internal/handlers/hotel"
	repairHandler "hotel/internal/handlers/repair"
	roomHandler "hotel/internal/handlers/room"
	userHandler "hotel/internal/handlers/user"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/table"
	"hotel/transport/cli/input"
	"hotel/transport/cli/response"
	"hotel/transport/cli/router"
)

type services struct {
	user    *userMocks.MockUserService
	hotel   *hotelMocks.MockHotelService
	room    *roomMocks.MockRoomService
	booking *bookingMocks.MockBookingService
	repair  *repairMocks.MockRepairService
}

func newRouter(t *testing.T, lines string) (*router.Router, services, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := services{
		user:    userMocks.NewMockUserService(ctrl),
		hotel:   hotelMocks.NewMockHotelService(ctrl),
		room:    roomMocks.NewMockRoomService(ctrl),
		booking: bookingMocks.NewMockBookingService(ctrl),
		repair:  repairMocks.NewMockRepairService(ctrl),
	}

	var out bytes.Buffer

	in := input.New(strings.NewReader(lines), &out)
	res := response.New(&out, &out)
	otl := otelMocks.NewOtel()

	r := router.New(router.DomainHandlers{
		User:    userHandler.New(svc.user, in, res, otl),
		Hotel:   hotelHandler.New(svc.hotel, in, res, otl),
		Room:    roomHandler.New(svc.room, in, res, otl),
		Booking: bookingHandler.New(svc.booking, in, res, otl),
		Repair:  repairHandler.New(svc.repair, in, res, otl),
	}, res)

	return r, svc, &out
}

func TestRouter_Anonymous(t *testing.T) {
	ctx := context.Background()

	t.Run("exit", func(t *testing.T) {
		r, _, _ := newRouter(t, "")

		sess, outcome := r.Handle(ctx, session.Session{}, constant.ChoiceExit)
		assert.Equal(t, router.OutcomeExit, outcome)
		assert.Equal(t, session.Anonymous, sess.State())
	})

	t.Run("operations need a log in", func(t *testing.T) {
		for _, choice := range []int{3, 4, 5, 10, 20, -1} {
			r, _, out := newRouter(t, "")

			sess, outcome := r.Handle(ctx, session.Session{}, choice)
			assert.Equal(t, router.OutcomeUnrecognized, outcome, "choice %d", choice)
			assert.Equal(t, session.Anonymous, sess.State())
			assert.Equal(t, "Unrecognized choice!\n", out.String())
		}
	})

	t.Run("create user stays anonymous", func(t *testing.T) {
		r, svc, _ := newRouter(t, "Alice\npw1\n")

		svc.user.EXPECT().Create(gomock.Any(), gomock.Any()).Return(1, nil)

		sess, outcome := r.Handle(ctx, session.Session{}, constant.ChoiceCreateUser)
		assert.Equal(t, router.OutcomeHandled, outcome)
		assert.False(t, sess.Authenticated())
	})

	t.Run("log in as customer", func(t *testing.T) {
		r, svc, _ := newRouter(t, "1\npw1\n")

		svc.user.EXPECT().LogIn(gomock.Any(), gomock.Any()).Return(1, nil)
		svc.user.EXPECT().UserType(gomock.Any(), 1).Return("customer", nil)

		sess, outcome := r.Handle(ctx, session.Session{}, constant.ChoiceLogIn)
		assert.Equal(t, router.OutcomeLoggedIn, outcome)
		assert.Equal(t, session.AuthenticatedCustomer, sess.State())
		assert.Equal(t, 1, sess.UserID)
	})

	t.Run("log in as admin", func(t *testing.T) {
		r, svc, _ := newRouter(t, "5\npw5\n")

		svc.user.EXPECT().LogIn(gomock.Any(), gomock.Any()).Return(5, nil)
		svc.user.EXPECT().UserType(gomock.Any(), 5).Return("admin", nil)

		sess, outcome := r.Handle(ctx, session.Session{}, constant.ChoiceLogIn)
		assert.Equal(t, router.OutcomeLoggedIn, outcome)
		assert.Equal(t, session.AuthenticatedManagerOrAdmin, sess.State())
	})

	t.Run("failed log in binds nothing", func(t *testing.T) {
		r, svc, out := newRouter(t, "1\nwrong\n")

		svc.user.EXPECT().LogIn(gomock.Any(), gomock.Any()).Return(0, failure.InvalidCredentials)

		sess, outcome := r.Handle(ctx, session.Session{}, constant.ChoiceLogIn)
		assert.Equal(t, router.OutcomeHandled, outcome)
		assert.Equal(t, session.Session{}, sess)
		assert.Contains(t, out.String(), "invalid credentials")
	})

	t.Run("input ends mid operation", func(t *testing.T) {
		r, _, _ := newRouter(t, "1\n")

		_, outcome := r.Handle(ctx, session.Session{}, constant.ChoiceLogIn)
		assert.Equal(t, router.OutcomeExit, outcome)
	})
}

func TestRouter_Customer(t *testing.T) {
	ctx := context.Background()
	customer := session.New(1, session.RoleCustomer)

	t.Run("manager operations are not offered", func(t *testing.T) {
		for choice := constant.ChoiceUpdateRoomInfo; choice <= constant.ChoiceViewRepairHistory; choice++ {
			r, _, out := newRouter(t, "")

			sess, outcome := r.Handle(ctx, customer, choice)
			assert.Equal(t, router.OutcomeUnrecognized, outcome, "choice %d", choice)
			assert.Equal(t, customer, sess)
			assert.Equal(t, "Unrecognized choice!\n", out.String())
		}
	})

	t.Run("view recent bookings", func(t *testing.T) {
		r, svc, _ := newRouter(t, "")

		svc.booking.EXPECT().ViewRecentBookings(gomock.Any(), 1).Return(table.Table{}, nil)

		sess, outcome := r.Handle(ctx, customer, constant.ChoiceViewRecentBookings)
		assert.Equal(t, router.OutcomeHandled, outcome)
		assert.Equal(t, customer, sess)
	})

	t.Run("failure keeps the session", func(t *testing.T) {
		r, svc, _ := newRouter(t, "1\n101\n05/01/2024\n")

		svc.booking.EXPECT().BookRoom(gomock.Any(), 1, gomock.Any()).Return("", failure.AlreadyBooked)

		sess, outcome := r.Handle(ctx, customer, constant.ChoiceBookRoom)
		assert.Equal(t, router.OutcomeHandled, outcome)
		assert.Equal(t, customer, sess)
	})

	t.Run("log out", func(t *testing.T) {
		r, _, _ := newRouter(t, "")

		sess, outcome := r.Handle(ctx, customer, constant.ChoiceLogOut)
		assert.Equal(t, router.OutcomeLoggedOut, outcome)
		assert.Equal(t, session.Anonymous, sess.State())
	})
}

func TestRouter_Manager(t *testing.T) {
	ctx := context.Background()
	manager := session.New(7, session.RoleManager)

	t.Run("customer operations are offered", func(t *testing.T) {
		r, svc, _ := newRouter(t, "1\n2\n")

		svc.hotel.EXPECT().ViewHotels(gomock.Any(), gomock.Any()).Return(table.Table{}, nil)

		_, outcome := r.Handle(ctx, manager, constant.ChoiceViewHotels)
		assert.Equal(t, router.OutcomeHandled, outcome)
	})

	t.Run("repair history", func(t *testing.T) {
		r, svc, _ := newRouter(t, "1\n")

		svc.repair.EXPECT().ViewRepairHistory(gomock.Any(), 7, gomock.Any()).Return(table.Table{}, nil)

		_, outcome := r.Handle(ctx, manager, constant.ChoiceViewRepairHistory)
		assert.Equal(t, router.OutcomeHandled, outcome)
	})

	t.Run("nine is a repair request, not exit", func(t *testing.T) {
		r, svc, _ := newRouter(t, "1\n101\n4\n")

		svc.repair.EXPECT().PlaceRepairRequest(gomock.Any(), 7, gomock.Any()).Return(nil)

		sess, outcome := r.Handle(ctx, manager, constant.ChoicePlaceRepairRequest)
		assert.Equal(t, router.OutcomeHandled, outcome)
		assert.Equal(t, manager, sess)
	})

	t.Run("unknown choice", func(t *testing.T) {
		r, _, _ := newRouter(t, "")

		_, outcome := r.Handle(ctx, manager, 11)
		assert.Equal(t, router.OutcomeUnrecognized, outcome)
	})
}

func TestRouter_Menu(t *testing.T) {
	r, _, _ := newRouter(t, "")

	assert.Equal(t, "MAIN MENU\n---------\n1. Create user\n2. Log in\n9. < EXIT\n", r.Menu(session.Session{}))

	customer := r.Menu(session.New(1, session.RoleCustomer))
	assert.Contains(t, customer, "4. View recent booking history\n")
	assert.NotContains(t, customer, "5. ")
	assert.True(t, strings.HasSuffix(customer, "20. Log out\n"))

	manager := r.Menu(session.New(7, session.RoleAdmin))
	require.Contains(t, manager, "1. View Hotels within 30 units\n")
	assert.Contains(t, manager, "10. View room repair Requests history\n")
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "logged in", router.OutcomeLoggedIn.String())
	assert.Equal(t, "unknown", router.Outcome(42).String())
}
