package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"database/sql"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/geo"
	"hotel/shared/table"
	"strconv"

	"github.com/rs/zerolog/log"
)

const distancePrecision = 3

type Hotel interface {
	ViewHotels(ctx context.Context, req dto.ViewHotelsRequest) (table.Table, error)
	Exist(ctx context.Context, hotelID int) (bool, error)
	Authorize(ctx context.Context, managerID, hotelID int) error
}

type serviceImpl struct {
	repo repository.Hotel
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) radius() float64 {
	if s.cfg.App.SearchRadius > 0 {
		return s.cfg.App.SearchRadius
	}

	return constant.DefaultSearchRadius
}

// ViewHotels lists hotels within the search radius of the point with their distance.
func (s *serviceImpl) ViewHotels(ctx context.Context, req dto.ViewHotelsRequest) (res table.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ViewHotels")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	latitude, longitude := req.Coordinates()
	radius := s.radius()

	hotels, err := s.repo.GetNearby(ctx, latitude, longitude, radius)
	if err != nil {
		log.Error().Err(err).Msg("failed to get nearby hotels")

		return res, fmt.Errorf("failed to get nearby hotels: %w", err)
	}

	latIdx := hotels.ColumnIndex(model.FieldLatitude)
	lonIdx := hotels.ColumnIndex(model.FieldLongitude)

	coordinates := func(row []sql.NullString) (float64, float64, bool) {
		if latIdx < 0 || lonIdx < 0 || !row[latIdx].Valid || !row[lonIdx].Valid {
			return 0, 0, false
		}

		hotelLat, errLat := strconv.ParseFloat(row[latIdx].String, 64)
		hotelLon, errLon := strconv.ParseFloat(row[lonIdx].String, 64)

		return hotelLat, hotelLon, errLat == nil && errLon == nil
	}

	// calculate_distance may round differently than Go does; the boundary is decided here.
	nearby := hotels.Filter(func(row []sql.NullString) bool {
		hotelLat, hotelLon, ok := coordinates(row)

		return ok && geo.WithinRadius(latitude, longitude, hotelLat, hotelLon, radius)
	})

	return nearby.AppendColumn(model.ColumnDistance, func(row []sql.NullString) sql.NullString {
		hotelLat, hotelLon, _ := coordinates(row)

		return table.Value(strconv.FormatFloat(geo.PlanarDistance(latitude, longitude, hotelLat, hotelLon), 'f', distancePrecision, 64))
	}), nil
}

func (s *serviceImpl) Exist(ctx context.Context, hotelID int) (exist bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HotelExist")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, exist, err = s.repo.GetManagerID(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel")

		return false, fmt.Errorf("failed to check hotel: %w", err)
	}

	return exist, nil
}

// Authorize checks that the hotel exists and is owned by managerID.
func (s *serviceImpl) Authorize(ctx context.Context, managerID, hotelID int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authorize")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, found, err := s.repo.GetManagerID(ctx, hotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel manager")

		return fmt.Errorf("failed to get hotel manager: %w", err)
	}

	if !found {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if owner != managerID {
		log.Warn().Int("managerID", managerID).Int("hotelID", hotelID).Msg("manager does not own hotel")

		return failure.AccessDenied
	}

	return nil
}
