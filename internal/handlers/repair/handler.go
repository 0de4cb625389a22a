package repair

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/cli/input"
	"hotel/transport/cli/response"
)

type Handler struct {
	service  service.Repair
	input    input.LineInput
	response response.Writer
	otel     otel.Otel
}

func New(service service.Repair, in input.LineInput, res response.Writer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		input:    in,
		response: res,
		otel:     otel,
	}
}

// PlaceRepairRequest records a repair and the request sent to the maintenance company.
func (handler *Handler) PlaceRepairRequest(ctx context.Context, sess session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PlaceRepairRequest")
	defer scope.End()

	req := dto.RepairRequest{}

	err := input.ReadFields(handler.input,
		input.Field{Prompt: "\tEnter hotel ID: ", Target: &req.HotelID},
		input.Field{Prompt: "\tEnter room number: ", Target: &req.RoomNumber},
		input.Field{Prompt: "\tEnter company ID: ", Target: &req.CompanyID},
	)
	if err != nil {
		return err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	if err := handler.service.PlaceRepairRequest(ctx, sess.UserID, req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	handler.response.WithMessage("Room repair request sent")

	return nil
}

func (handler *Handler) ViewRepairHistory(ctx context.Context, sess session.Session) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewRepairHistory")
	defer scope.End()

	req := dto.RepairHistoryRequest{}

	if err := input.ReadFields(handler.input, input.Field{Prompt: "\tEnter hotel ID: ", Target: &req.HotelID}); err != nil {
		return err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	repairs, err := handler.service.ViewRepairHistory(ctx, sess.UserID, req)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	handler.response.WithTable(repairs)

	return nil
}
