package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	hotelService "hotel/internal/domains/hotel/service"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/table"

	"github.com/rs/zerolog/log"
)

type Room interface {
	ViewRooms(ctx context.Context, req dto.ViewRoomsRequest) (table.Table, error)
	UpdateRoomInfo(ctx context.Context, managerID int, req dto.UpdateRoomRequest) error
	ViewRecentUpdates(ctx context.Context, managerID int) (table.Table, error)
}

type serviceImpl struct {
	repo  repository.Room
	hotel hotelService.Hotel
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Room, hotel hotelService.Hotel, cfg *config.Config, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		hotel: hotel,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) recentLimit() uint {
	if s.cfg.App.RecentLimit > 0 {
		return s.cfg.App.RecentLimit
	}

	return constant.DefaultRecentLimit
}

// ViewRooms lists the rooms of a hotel with their availability on the given date.
func (s *serviceImpl) ViewRooms(ctx context.Context, req dto.ViewRoomsRequest) (res table.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViewRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.GetAvailability(ctx, req.ToHotelID(), req.ToDate())
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	return res, nil
}

// UpdateRoomInfo changes price and image of a room owned by the manager and logs the change.
func (s *serviceImpl) UpdateRoomInfo(ctx context.Context, managerID int, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoomInfo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotelID := req.ToHotelID()
	roomNumber := req.ToRoomNumber()

	if err = s.hotel.Authorize(ctx, managerID, hotelID); err != nil {
		return err //nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, hotelID, roomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room")

		return fmt.Errorf("failed to check room: %w", err)
	}

	if !exist {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if _, err = s.repo.Update(ctx, hotelID, roomNumber, req.ToFields()); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	if err = s.repo.InsertUpdateLog(ctx, req.ToUpdateLog(managerID)); err != nil {
		log.Error().Err(err).Msg("failed to insert room update log")

		return fmt.Errorf("failed to insert room update log: %w", err)
	}

	return nil
}

// ViewRecentUpdates lists the latest room updates made by the manager.
func (s *serviceImpl) ViewRecentUpdates(ctx context.Context, managerID int) (res table.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViewRecentUpdates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.GetRecentUpdates(ctx, managerID, s.recentLimit())
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent updates")

		return res, fmt.Errorf("failed to get recent updates: %w", err)
	}

	return res, nil
}
