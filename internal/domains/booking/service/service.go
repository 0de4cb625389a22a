package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	hotelModel "hotel/internal/domains/hotel/model"
	hotelService "hotel/internal/domains/hotel/service"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/table"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	BookRoom(ctx context.Context, customerID int, req dto.BookRoomRequest) (string, error)
	ViewRecentBookings(ctx context.Context, customerID int) (table.Table, error)
	ViewBookingHistory(ctx context.Context, managerID int, req dto.BookingHistoryRequest) (table.Table, error)
	ViewRegularCustomers(ctx context.Context, managerID int, req dto.RegularCustomersRequest) (table.Table, error)
}

type serviceImpl struct {
	repo  repository.Booking
	rooms roomRepository.Room
	hotel hotelService.Hotel
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Booking, rooms roomRepository.Room, hotel hotelService.Hotel, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		rooms: rooms,
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

// BookRoom reserves the room for the date and returns its price. The availability check and
// the insert are separate statements.
func (s *serviceImpl) BookRoom(ctx context.Context, customerID int, req dto.BookRoomRequest) (price string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotelID := req.ToHotelID()
	roomNumber := req.ToRoomNumber()

	booked, err := s.repo.IsBooked(ctx, hotelID, roomNumber, req.ToDate())
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking")

		return "", fmt.Errorf("failed to check booking: %w", err)
	}

	if booked {
		return "", failure.AlreadyBooked
	}

	exist, err := s.hotel.Exist(ctx, hotelID)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	if !exist {
		return "", failure.NotFound(hotelModel.EntityName) //nolint:wrapcheck
	}

	price, found, err := s.rooms.GetPrice(ctx, hotelID, roomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room price")

		return "", fmt.Errorf("failed to get room price: %w", err)
	}

	if !found {
		return "", failure.NotFound(roomModel.EntityName) //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(customerID)); err != nil {
		if postgres.IsUniqueViolation(err) {
			return "", failure.AlreadyBooked
		}

		log.Error().Err(err).Msg("failed to insert booking")

		return "", fmt.Errorf("failed to insert booking: %w", err)
	}

	return price, nil
}

// ViewRecentBookings lists the latest bookings of the customer.
func (s *serviceImpl) ViewRecentBookings(ctx context.Context, customerID int) (res table.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViewRecentBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.GetRecent(ctx, customerID, s.recentLimit())
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	return res, nil
}

// ViewBookingHistory lists the bookings of a hotel owned by the manager within a date range.
func (s *serviceImpl) ViewBookingHistory(ctx context.Context, managerID int, req dto.BookingHistoryRequest) (res table.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViewBookingHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotelID := req.ToHotelID()

	if err = s.hotel.Authorize(ctx, managerID, hotelID); err != nil {
		return res, err //nolint:wrapcheck
	}

	from, to := req.ToRange()

	res, err = s.repo.GetHistory(ctx, hotelID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking history")

		return res, fmt.Errorf("failed to get booking history: %w", err)
	}

	return res, nil
}

// ViewRegularCustomers lists the customers who booked the manager's hotel most often.
func (s *serviceImpl) ViewRegularCustomers(ctx context.Context, managerID int, req dto.RegularCustomersRequest) (res table.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViewRegularCustomers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotelID := req.ToHotelID()

	if err = s.hotel.Authorize(ctx, managerID, hotelID); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.GetRegularCustomers(ctx, hotelID, s.recentLimit())
	if err != nil {
		log.Error().Err(err).Msg("failed to get regular customers")

		return res, fmt.Errorf("failed to get regular customers: %w", err)
	}

	return res, nil
}
