package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/hotel/model"
	gRepo "hotel/shared/repository"
	"hotel/shared/table"

	"github.com/doug-martin/goqu/v9"
)

type Hotel interface {
	GetNearby(ctx context.Context, latitude, longitude, radius float64) (table.Table, error)
	GetManagerID(ctx context.Context, hotelID int) (int, bool, error)
}

type repositoryImpl struct {
	gRepo.Repository
}

func New(db postgres.Client, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, model.TableName, db, otel),
	}
}

// GetNearby lists the hotels whose planar distance to the point is within radius.
func (repo *repositoryImpl) GetNearby(ctx context.Context, latitude, longitude, radius float64) (table.Table, error) {
	query := repo.From().
		Select(
			goqu.C(model.FieldID),
			goqu.C(model.FieldName),
			goqu.C(model.FieldLatitude),
			goqu.C(model.FieldLongitude),
			goqu.C(model.FieldDateEstablished),
		).
		Where(goqu.L(
			"calculate_distance(?, ?, ?, ?) <= ?",
			goqu.C(model.FieldLatitude), goqu.C(model.FieldLongitude), latitude, longitude, radius,
		)).
		Order(goqu.C(model.FieldID).Asc())

	return repo.Read(ctx, "GetNearby", query)
}

// GetManagerID returns the owning manager; found is false when the hotel does not exist.
func (repo *repositoryImpl) GetManagerID(ctx context.Context, hotelID int) (int, bool, error) {
	query := repo.From().
		Select(goqu.C(model.FieldManagerID)).
		Where(goqu.C(model.FieldID).Eq(hotelID))

	result, err := repo.Read(ctx, "GetManagerID", query)
	if err != nil {
		return 0, false, err
	}

	if result.Len() == 0 {
		return 0, false, nil
	}

	managerID, ok := result.Int()
	if !ok {
		return 0, true, nil
	}

	return managerID, true, nil
}
