package room_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/handlers/room"
	"hotel/internal/session"
	"hotel/shared/failure"
	"hotel/shared/table"
	"hotel/transport/cli/input"
	"hotel/transport/cli/response"
)

func newHandler(t *testing.T, lines string) (room.Handler, *mocks.MockRoomService, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRoomService(ctrl)

	var out bytes.Buffer

	return room.New(svc, input.New(strings.NewReader(lines), &out), response.New(&out, &out), otelMocks.NewOtel()), svc, &out
}

func TestHandler_ViewRooms(t *testing.T) {
	handler, svc, out := newHandler(t, "1\n05/01/2024\n")

	svc.EXPECT().
		ViewRooms(gomock.Any(), dto.ViewRoomsRequest{HotelID: "1", Date: "05/01/2024"}).
		Return(table.New([]string{"roomnumber", "price", "availability"},
			[]string{"101", "120", "Available"},
			[]string{"102", "150", "Booked"},
		), nil)

	require.NoError(t, handler.ViewRooms(context.Background()))
	assert.Contains(t, out.String(), "101\t120\tAvailable\n102\t150\tBooked\nTotal row(s): 2\n")
}

func TestHandler_ViewRooms_BadDate(t *testing.T) {
	handler, _, out := newHandler(t, "1\n2024-05-01\n")

	require.NoError(t, handler.ViewRooms(context.Background()))
	assert.Contains(t, out.String(), "date must be a date in Month/Day/Year format\n")
}

func TestHandler_UpdateRoomInfo(t *testing.T) {
	sess := session.New(7, session.RoleManager)

	t.Run("updated", func(t *testing.T) {
		handler, svc, out := newHandler(t, "1\n101\n99.5\n\n")

		svc.EXPECT().
			UpdateRoomInfo(gomock.Any(), 7, dto.UpdateRoomRequest{HotelID: "1", RoomNumber: "101", Price: "99.5"}).
			Return(nil)

		require.NoError(t, handler.UpdateRoomInfo(context.Background(), sess))
		assert.Contains(t, out.String(), "Room updated!\nLogs updated!\n")
	})

	t.Run("not the owner", func(t *testing.T) {
		handler, svc, out := newHandler(t, "2\n101\n99.5\nhttp://img.example/101.png\n")

		svc.EXPECT().UpdateRoomInfo(gomock.Any(), 7, gomock.Any()).Return(failure.AccessDenied)

		require.NoError(t, handler.UpdateRoomInfo(context.Background(), sess))
		assert.Contains(t, out.String(), "access denied\n")
		assert.NotContains(t, out.String(), "Room updated!")
	})

	t.Run("bad image URL", func(t *testing.T) {
		handler, _, out := newHandler(t, "2\n101\n99.5\nnot a url\n")

		require.NoError(t, handler.UpdateRoomInfo(context.Background(), sess))
		assert.Contains(t, out.String(), "image URL must be a valid URL\n")
	})
}

func TestHandler_ViewRecentUpdates(t *testing.T) {
	handler, svc, out := newHandler(t, "")

	svc.EXPECT().
		ViewRecentUpdates(gomock.Any(), 7).
		Return(table.New([]string{"updatenumber", "hotelid", "roomnumber", "updatedon"}), nil)

	require.NoError(t, handler.ViewRecentUpdates(context.Background(), session.New(7, session.RoleManager)))
	assert.Contains(t, out.String(), "Total row(s): 0\n")
}
