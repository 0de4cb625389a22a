package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Repair=MockRepairService

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	hotelService "hotel/internal/domains/hotel/service"
	"hotel/internal/domains/repair/model"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/table"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Repair interface {
	PlaceRepairRequest(ctx context.Context, managerID int, req dto.RepairRequest) error
	ViewRepairHistory(ctx context.Context, managerID int, req dto.RepairHistoryRequest) (table.Table, error)
}

type serviceImpl struct {
	repo  repository.Repair
	rooms roomRepository.Room
	hotel hotelService.Hotel
	otel  otel.Otel
}

func New(repo repository.Repair, rooms roomRepository.Room, hotel hotelService.Hotel, otel otel.Otel) Repair {
	return &serviceImpl{
		repo:  repo,
		rooms: rooms,
		hotel: hotel,
		otel:  otel,
	}
}

// PlaceRepairRequest schedules a repair and records the request. The two inserts are
// independent statements; a failure of the second leaves the first in place.
func (s *serviceImpl) PlaceRepairRequest(ctx context.Context, managerID int, req dto.RepairRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PlaceRepairRequest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotelID := req.ToHotelID()

	if err = s.hotel.Authorize(ctx, managerID, hotelID); err != nil {
		return err //nolint:wrapcheck
	}

	exist, err := s.rooms.Exist(ctx, hotelID, req.ToRoomNumber())
	if err != nil {
		log.Error().Err(err).Msg("failed to check room")

		return fmt.Errorf("failed to check room: %w", err)
	}

	if !exist {
		return failure.NotFound(roomModel.EntityName) //nolint:wrapcheck
	}

	exist, err = s.repo.CompanyExist(ctx, req.ToCompanyID())
	if err != nil {
		log.Error().Err(err).Msg("failed to check maintenance company")

		return fmt.Errorf("failed to check maintenance company: %w", err)
	}

	if !exist {
		return failure.NotFound(model.CompanyEntityName) //nolint:wrapcheck
	}

	now := timezone.Now()

	if err = s.repo.InsertRepair(ctx, req.ToRepair(now)); err != nil {
		log.Error().Err(err).Msg("failed to insert room repair")

		return fmt.Errorf("failed to insert room repair: %w", err)
	}

	if err = s.repo.InsertRequest(ctx, req.ToRequest(managerID, now)); err != nil {
		log.Error().Err(err).Msg("failed to insert repair request")

		return fmt.Errorf("failed to insert repair request: %w", err)
	}

	return nil
}

// ViewRepairHistory lists the repairs of a hotel owned by the manager.
func (s *serviceImpl) ViewRepairHistory(ctx context.Context, managerID int, req dto.RepairHistoryRequest) (res table.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViewRepairHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotelID := req.ToHotelID()

	if err = s.hotel.Authorize(ctx, managerID, hotelID); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.GetHistory(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get repair history")

		return res, fmt.Errorf("failed to get repair history: %w", err)
	}

	return res, nil
}
