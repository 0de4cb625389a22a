package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/repair/model"
	gRepo "hotel/shared/repository"
	"hotel/shared/table"

	"github.com/doug-martin/goqu/v9"
)

type Repair interface {
	CompanyExist(ctx context.Context, companyID int) (bool, error)
	InsertRepair(ctx context.Context, repair model.Repair) error
	InsertRequest(ctx context.Context, request model.Request) error
	GetHistory(ctx context.Context, hotelID int) (table.Table, error)
}

type repositoryImpl struct {
	gRepo.Repository
	requests  gRepo.Repository
	companies gRepo.Repository
}

func New(db postgres.Client, otel otel.Otel) Repair {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, model.TableName, db, otel),
		requests:   gRepo.NewRepository(model.RequestEntityName, model.RequestTableName, db, otel),
		companies:  gRepo.NewRepository(model.CompanyEntityName, model.CompanyTableName, db, otel),
	}
}

func (repo *repositoryImpl) CompanyExist(ctx context.Context, companyID int) (bool, error) {
	query := repo.companies.From().
		Select(goqu.C(model.FieldCompanyID)).
		Where(goqu.C(model.FieldCompanyID).Eq(companyID))

	return repo.companies.Exist(ctx, "Exist", query)
}

func (repo *repositoryImpl) InsertRepair(ctx context.Context, repair model.Repair) error {
	_, err := repo.Write(ctx, "Insert", repo.Insert().Rows(repair))

	return err
}

func (repo *repositoryImpl) InsertRequest(ctx context.Context, request model.Request) error {
	_, err := repo.requests.Write(ctx, "Insert", repo.requests.Insert().Rows(request))

	return err
}

// GetHistory lists the repairs of the hotel, newest first.
func (repo *repositoryImpl) GetHistory(ctx context.Context, hotelID int) (table.Table, error) {
	query := repo.From().
		Select(
			goqu.C(model.FieldCompanyID),
			goqu.C(model.FieldHotelID),
			goqu.C(model.FieldRoomNumber),
			goqu.C(model.FieldRepairDate),
		).
		Where(goqu.C(model.FieldHotelID).Eq(hotelID)).
		Order(goqu.C(model.FieldRepairDate).Desc(), goqu.C(model.FieldRepairID).Desc())

	return repo.Read(ctx, "GetHistory", query)
}
