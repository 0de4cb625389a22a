package booking_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/handlers/booking"
	"hotel/internal/session"
	"hotel/shared/failure"
	"hotel/shared/table"
	"hotel/transport/cli/input"
	"hotel/transport/cli/response"
)

func newHandler(t *testing.T, lines string) (booking.Handler, *mocks.MockBookingService, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBookingService(ctrl)

	var out bytes.Buffer

	return booking.New(svc, input.New(strings.NewReader(lines), &out), response.New(&out, &out), otelMocks.NewOtel()), svc, &out
}

func TestHandler_BookRoom(t *testing.T) {
	sess := session.New(3, session.RoleCustomer)
	req := dto.BookRoomRequest{HotelID: "1", RoomNumber: "101", BookingDate: "05/01/2024"}

	t.Run("booked", func(t *testing.T) {
		handler, svc, out := newHandler(t, "1\n101\n05/01/2024\n")

		svc.EXPECT().BookRoom(gomock.Any(), 3, req).Return("120", nil)

		require.NoError(t, handler.BookRoom(context.Background(), sess))
		assert.Contains(t, out.String(), "Room Booked\nPrice: 120\n")
	})

	t.Run("already booked", func(t *testing.T) {
		handler, svc, out := newHandler(t, "1\n101\n05/01/2024\n")

		svc.EXPECT().BookRoom(gomock.Any(), 3, req).Return("", failure.AlreadyBooked)

		require.NoError(t, handler.BookRoom(context.Background(), sess))
		assert.Contains(t, out.String(), "room is already booked\n")
		assert.NotContains(t, out.String(), "Room Booked")
	})

	t.Run("room number not a number", func(t *testing.T) {
		handler, _, out := newHandler(t, "1\nsuite\n05/01/2024\n")

		require.NoError(t, handler.BookRoom(context.Background(), sess))
		assert.Contains(t, out.String(), "room number must be a positive whole number\n")
	})

	t.Run("hotel ID out of range", func(t *testing.T) {
		handler, _, out := newHandler(t, "99999999999999999999\n101\n05/01/2024\n")

		require.NoError(t, handler.BookRoom(context.Background(), sess))
		assert.Contains(t, out.String(), "hotel ID must be a positive whole number\n")
		assert.NotContains(t, out.String(), "Room Booked")
	})
}

func TestHandler_ViewBookingHistory(t *testing.T) {
	handler, svc, out := newHandler(t, "1\n01/01/2024\n12/31/2024\n")

	svc.EXPECT().
		ViewBookingHistory(gomock.Any(), 7, dto.BookingHistoryRequest{HotelID: "1", From: "01/01/2024", To: "12/31/2024"}).
		Return(table.New([]string{"bookingid", "name"}, []string{"5", "Alice"}), nil)

	require.NoError(t, handler.ViewBookingHistory(context.Background(), session.New(7, session.RoleManager)))
	assert.Contains(t, out.String(), "5\tAlice\n")
}

func TestHandler_ViewRegularCustomers(t *testing.T) {
	handler, svc, out := newHandler(t, "9\n")

	svc.EXPECT().
		ViewRegularCustomers(gomock.Any(), 7, dto.RegularCustomersRequest{HotelID: "9"}).
		Return(table.Table{}, failure.NotFound("hotel"))

	require.NoError(t, handler.ViewRegularCustomers(context.Background(), session.New(7, session.RoleManager)))
	assert.Contains(t, out.String(), "hotel not found\n")
}

func TestHandler_ViewRecentBookings(t *testing.T) {
	handler, svc, out := newHandler(t, "")

	svc.EXPECT().
		ViewRecentBookings(gomock.Any(), 3).
		Return(table.New([]string{"hotelid", "roomnumber", "price", "bookingdate"}, []string{"1", "101", "120", "05/01/2024"}), nil)

	require.NoError(t, handler.ViewRecentBookings(context.Background(), session.New(3, session.RoleCustomer)))
	assert.Contains(t, out.String(), "1\t101\t120\t05/01/2024\nTotal row(s): 1\n")
}
