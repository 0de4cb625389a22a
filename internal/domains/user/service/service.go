package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=User=MockUserService

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/password"
	"strings"

	"github.com/rs/zerolog/log"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (int, error)
	LogIn(ctx context.Context, req dto.LogInRequest) (int, error)
	UserType(ctx context.Context, userID int) (string, error)
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Create registers a customer and returns the id the sequence handed out.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	stored := req.Password
	if s.cfg.App.HashPasswords {
		stored, err = password.Hash(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return 0, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(stored)); err != nil {
		log.Error().Err(err).Msg("failed to insert user")

		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err = s.repo.LastID(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to read new user id")

		return 0, fmt.Errorf("failed to read new user id: %w", err)
	}

	return id, nil
}

// LogIn returns the user id when the credentials match a stored user.
func (s *serviceImpl) LogIn(ctx context.Context, req dto.LogInRequest) (id int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LogIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID := req.ID()

	if s.cfg.App.HashPasswords {
		return s.logInHashed(ctx, userID, req.Password)
	}

	count, err := s.repo.CountByCredentials(ctx, userID, req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to check credentials")

		return 0, fmt.Errorf("failed to check credentials: %w", err)
	}

	if count < 1 {
		return 0, failure.InvalidCredentials
	}

	return userID, nil
}

func (s *serviceImpl) logInHashed(ctx context.Context, userID int, plain string) (int, error) {
	stored, found, err := s.repo.GetPassword(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stored password")

		return 0, fmt.Errorf("failed to get stored password: %w", err)
	}

	if !found {
		return 0, failure.InvalidCredentials
	}

	if err = password.Verify(plain, stored); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return 0, failure.InvalidCredentials
		}

		log.Error().Err(err).Msg("failed to verify password")

		return 0, fmt.Errorf("failed to verify password: %w", err)
	}

	return userID, nil
}

// UserType returns the trimmed, lower-cased role of the user.
func (s *serviceImpl) UserType(ctx context.Context, userID int) (role string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UserType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userType, found, err := s.repo.GetUserType(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user type")

		return "", fmt.Errorf("failed to get user type: %w", err)
	}

	if !found {
		return "", failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return strings.ToLower(strings.TrimSpace(userType)), nil
}
