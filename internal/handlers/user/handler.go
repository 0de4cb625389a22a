package user

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	"hotel/internal/session"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/validator"
	"hotel/transport/cli/input"
	"hotel/transport/cli/response"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.User
	input    input.LineInput
	response response.Writer
	otel     otel.Otel
}

func New(service service.User, in input.LineInput, res response.Writer, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		input:    in,
		response: res,
		otel:     otel,
	}
}

// CreateUser signs up a new customer and prints the assigned user ID.
func (handler *Handler) CreateUser(ctx context.Context) error {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	req := dto.CreateUserRequest{}

	err := input.ReadFields(handler.input,
		input.Field{Prompt: "\tEnter name: ", Target: &req.Name},
		input.Field{Prompt: "\tEnter password: ", Target: &req.Password},
	)
	if err != nil {
		return err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	userID, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return nil
	}

	scope.AddEvent(fmt.Sprintf("user %d created", userID))

	handler.response.WithMessage(fmt.Sprintf("User successfully created with userID = %d", userID))

	return nil
}

// LogIn checks the credentials and binds the user's role. A failed log in returns the anonymous session.
func (handler *Handler) LogIn(ctx context.Context) (session.Session, error) {
	ctx, scope := handler.otel.NewScope(ctx, constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LogIn")
	defer scope.End()

	req := dto.LogInRequest{}

	err := input.ReadFields(handler.input,
		input.Field{Prompt: "\tEnter userID: ", Target: &req.UserID},
		input.Field{Prompt: "\tEnter password: ", Target: &req.Password},
	)
	if err != nil {
		return session.Session{}, err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return session.Session{}, nil
	}

	userID, err := handler.service.LogIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return session.Session{}, nil
	}

	userType, err := handler.service.UserType(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		handler.response.WithError(err)

		return session.Session{}, nil
	}

	role, ok := session.ParseRole(userType)
	if !ok {
		log.Warn().Int("user_id", userID).Str("user_type", userType).Msg("unknown user type")
		handler.response.WithError(failure.InvalidCredentials)

		return session.Session{}, nil
	}

	sess := session.New(userID, role)

	log.Debug().Str("session_id", sess.ID).Int("user_id", userID).Str("role", string(role)).Msg("user logged in")
	scope.SetAttribute("session.id", sess.ID)

	return sess, nil
}
