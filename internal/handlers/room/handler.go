package room

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/cli/input"
	"hotel/transport/cli/response"
)

type Handler struct {
	service  service.Room
	input    input.LineInput
	response response.Writer
	otel     otel.Otel
}

func New(service service.Room, in input.LineInput, res response.Writer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		input:    in,
		response: res,
		otel:     otel,
	}
}

// ViewRooms prints every room of a hotel with its availability on one date.
func (handler *Handler) ViewRooms(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRooms")
	defer scope.End()

	req := dto.ViewRoomsRequest{}

	err := input.ReadFields(handler.input,
		input.Field{Prompt: "\tEnter hotel ID: ", Target: &req.HotelID},
		input.Field{Prompt: "\tEnter date (MM/DD/YYYY): ", Target: &req.Date},
	)
	if err != nil {
		return err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	rooms, err := handler.service.ViewRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	handler.response.WithTable(rooms)

	return nil
}

// UpdateRoomInfo changes the price and image of a room in a hotel the manager owns.
func (handler *Handler) UpdateRoomInfo(ctx context.Context, sess session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomInfo")
	defer scope.End()

	req := dto.UpdateRoomRequest{}

	err := input.ReadFields(handler.input,
		input.Field{Prompt: "\tEnter hotel ID: ", Target: &req.HotelID},
		input.Field{Prompt: "\tEnter room number: ", Target: &req.RoomNumber},
		input.Field{Prompt: "\tEnter new price: ", Target: &req.Price},
		input.Field{Prompt: "\tEnter new image URL (blank keeps the current one): ", Target: &req.ImageURL},
	)
	if err != nil {
		return err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	if err := handler.service.UpdateRoomInfo(ctx, sess.UserID, req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	handler.response.WithMessage("Room updated!")
	handler.response.WithMessage("Logs updated!")

	return nil
}

// ViewRecentUpdates prints the latest room updates made by the manager.
func (handler *Handler) ViewRecentUpdates(ctx context.Context, sess session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRecentUpdates")
	defer scope.End()

	updates, err := handler.service.ViewRecentUpdates(ctx, sess.UserID)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	handler.response.WithTable(updates)

	return nil
}
