package hotel

import (
	"context"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/cli/input"
	"hotel/transport/cli/response"
)

type Handler struct {
	service  service.Hotel
	input    input.LineInput
	response response.Writer
	otel     otel.Otel
}

func New(service service.Hotel, in input.LineInput, res response.Writer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		input:    in,
		response: res,
		otel:     otel,
	}
}

// ViewHotels lists the hotels around a coordinate.
func (handler *Handler) ViewHotels(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ViewHotels")
	defer scope.End()

	req := dto.ViewHotelsRequest{}

	err := input.ReadFields(handler.input,
		input.Field{Prompt: "\tEnter latitude: ", Target: &req.Latitude},
		input.Field{Prompt: "\tEnter longitude: ", Target: &req.Longitude},
	)
	if err != nil {
		return err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	hotels, err := handler.service.ViewHotels(ctx, req)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	handler.response.WithTable(hotels)

	return nil
}
