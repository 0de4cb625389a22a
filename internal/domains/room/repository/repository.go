package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gRepo "hotel/shared/repository"
	"hotel/shared/table"
	"time"

	"github.com/doug-martin/goqu/v9"
)

type Room interface {
	GetAvailability(ctx context.Context, hotelID int, date time.Time) (table.Table, error)
	GetPrice(ctx context.Context, hotelID, roomNumber int) (string, bool, error)
	Exist(ctx context.Context, hotelID, roomNumber int) (bool, error)
	Update(ctx context.Context, hotelID, roomNumber int, fields map[string]any) (int64, error)
	InsertUpdateLog(ctx context.Context, log model.UpdateLog) error
	GetRecentUpdates(ctx context.Context, managerID int, limit uint) (table.Table, error)
}

type repositoryImpl struct {
	gRepo.Repository
	logs gRepo.Repository
}

func New(db postgres.Client, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, model.TableName, db, otel),
		logs:       gRepo.NewRepository(model.UpdateLogEntityName, model.UpdateLogTableName, db, otel),
	}
}

func byRoom(hotelID, roomNumber int) goqu.Ex {
	return goqu.Ex{
		model.FieldHotelID:    hotelID,
		model.FieldRoomNumber: roomNumber,
	}
}

// GetAvailability lists every room of the hotel, Booked when a booking exists on date.
func (repo *repositoryImpl) GetAvailability(ctx context.Context, hotelID int, date time.Time) (table.Table, error) {
	booked := gRepo.Select(goqu.T(bookingModel.TableName).As("b")).
		Select(goqu.L("1")).
		Where(
			goqu.I("b."+bookingModel.FieldHotelID).Eq(goqu.I("r."+model.FieldHotelID)),
			goqu.I("b."+bookingModel.FieldRoomNumber).Eq(goqu.I("r."+model.FieldRoomNumber)),
			goqu.I("b."+bookingModel.FieldBookingDate).Eq(shared.FormatSQLDate(date)),
		)

	query := gRepo.Select(goqu.T(model.TableName).As("r")).
		Select(
			goqu.I("r."+model.FieldRoomNumber),
			goqu.I("r."+model.FieldPrice),
			goqu.Case().
				When(goqu.Func("EXISTS", booked), constant.AvailabilityBooked).
				Else(constant.AvailabilityAvailable).
				As(model.ColumnAvailability),
		).
		Where(goqu.I("r." + model.FieldHotelID).Eq(hotelID)).
		Order(goqu.I("r." + model.FieldRoomNumber).Asc())

	return repo.Read(ctx, "GetAvailability", query)
}

// GetPrice returns the room price; found is false when the room does not exist at the hotel.
func (repo *repositoryImpl) GetPrice(ctx context.Context, hotelID, roomNumber int) (string, bool, error) {
	query := repo.From().
		Select(goqu.C(model.FieldPrice)).
		Where(byRoom(hotelID, roomNumber))

	result, err := repo.Read(ctx, "GetPrice", query)
	if err != nil {
		return "", false, err
	}

	if result.Len() == 0 {
		return "", false, nil
	}

	return result.String(), true, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, hotelID, roomNumber int) (bool, error) {
	query := repo.From().
		Select(goqu.C(model.FieldRoomNumber)).
		Where(byRoom(hotelID, roomNumber))

	return repo.Repository.Exist(ctx, "Exist", query)
}

func (repo *repositoryImpl) Update(ctx context.Context, hotelID, roomNumber int, fields map[string]any) (int64, error) {
	query := repo.Repository.Update().
		Set(goqu.Record(fields)).
		Where(byRoom(hotelID, roomNumber))

	return repo.Write(ctx, "Update", query)
}

func (repo *repositoryImpl) InsertUpdateLog(ctx context.Context, log model.UpdateLog) error {
	_, err := repo.logs.Write(ctx, "Insert", repo.logs.Insert().Rows(log))

	return err
}

// GetRecentUpdates lists the latest updates made by the manager, newest first.
func (repo *repositoryImpl) GetRecentUpdates(ctx context.Context, managerID int, limit uint) (table.Table, error) {
	query := repo.logs.From().
		Select(
			goqu.C(model.FieldUpdateNumber),
			goqu.C(model.FieldHotelID),
			goqu.C(model.FieldRoomNumber),
			goqu.C(model.FieldUpdatedOn),
		).
		Where(goqu.C(model.FieldManagerID).Eq(managerID)).
		Order(goqu.C(model.FieldUpdatedOn).Desc(), goqu.C(model.FieldUpdateNumber).Desc()).
		Limit(limit)

	return repo.logs.Read(ctx, "GetRecentUpdates", query)
}
