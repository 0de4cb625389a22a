package booking

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/cli/input"
	"hotel/transport/cli/response"
)

type Handler struct {
	service  service.Booking
	input    input.LineInput
	response response.Writer
	otel     otel.Otel
}

func New(service service.Booking, in input.LineInput, res response.Writer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		input:    in,
		response: res,
		otel:     otel,
	}
}

// BookRoom books a room for the logged in user and prints its price.
func (handler *Handler) BookRoom(ctx context.Context, sess session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	req := dto.BookRoomRequest{}

	err := input.ReadFields(handler.input,
		input.Field{Prompt: "\tEnter hotel ID: ", Target: &req.HotelID},
		input.Field{Prompt: "\tEnter room number: ", Target: &req.RoomNumber},
		input.Field{Prompt: "\tEnter date of your stay (MM/DD/YYYY): ", Target: &req.BookingDate},
	)
	if err != nil {
		return err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	price, err := handler.service.BookRoom(ctx, sess.UserID, req)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	handler.response.WithMessage("Room Booked")
	handler.response.WithMessage("Price: " + price)

	return nil
}

func (handler *Handler) ViewRecentBookings(ctx context.Context, sess session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRecentBookings")
	defer scope.End()

	bookings, err := handler.service.ViewRecentBookings(ctx, sess.UserID)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	handler.response.WithTable(bookings)

	return nil
}

// ViewBookingHistory prints the bookings of an owned hotel between two dates.
func (handler *Handler) ViewBookingHistory(ctx context.Context, sess session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewBookingHistory")
	defer scope.End()

	req := dto.BookingHistoryRequest{}

	err := input.ReadFields(handler.input,
		input.Field{Prompt: "\tEnter hotel ID: ", Target: &req.HotelID},
		input.Field{Prompt: "\tEnter start date of bookings (MM/DD/YYYY): ", Target: &req.From},
		input.Field{Prompt: "\tEnter end date of bookings (MM/DD/YYYY): ", Target: &req.To},
	)
	if err != nil {
		return err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	history, err := handler.service.ViewBookingHistory(ctx, sess.UserID, req)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	handler.response.WithTable(history)

	return nil
}

func (handler *Handler) ViewRegularCustomers(ctx context.Context, sess session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRegularCustomers")
	defer scope.End()

	req := dto.RegularCustomersRequest{}

	if err := input.ReadFields(handler.input, input.Field{Prompt: "\tEnter hotel ID: ", Target: &req.HotelID}); err != nil {
		return err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	customers, err := handler.service.ViewRegularCustomers(ctx, sess.UserID, req)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	handler.response.WithTable(customers)

	return nil
}
