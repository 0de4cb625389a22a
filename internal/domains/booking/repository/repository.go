package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	userModel "hotel/internal/domains/user/model"
	"hotel/shared"
	"hotel/shared/constant"
	gRepo "hotel/shared/repository"
	"hotel/shared/table"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	IsBooked(ctx context.Context, hotelID, roomNumber int, date time.Time) (bool, error)
	GetRecent(ctx context.Context, customerID int, limit uint) (table.Table, error)
	GetHistory(ctx context.Context, hotelID int, from, to time.Time) (table.Table, error)
	GetRegularCustomers(ctx context.Context, hotelID int, limit uint) (table.Table, error)
}

type repositoryImpl struct {
	gRepo.Repository
}

func New(db postgres.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, model.TableName, db, otel),
	}
}

func col(alias, field string) exp.IdentifierExpression {
	return goqu.I(alias + "." + field)
}

func (repo *repositoryImpl) bookings() *goqu.SelectDataset {
	return gRepo.Select(goqu.T(model.TableName).As("b"))
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	_, err := repo.Write(ctx, "Insert", repo.Repository.Insert().Rows(booking))

	return err
}

// IsBooked reports whether the room already has a booking on date.
func (repo *repositoryImpl) IsBooked(ctx context.Context, hotelID, roomNumber int, date time.Time) (bool, error) {
	query := repo.From().
		Select(goqu.C(model.FieldID)).
		Where(goqu.Ex{
			model.FieldHotelID:     hotelID,
			model.FieldRoomNumber:  roomNumber,
			model.FieldBookingDate: shared.FormatSQLDate(date),
		})

	return repo.Exist(ctx, "IsBooked", query)
}

// GetRecent lists the latest bookings of the customer with the room price, newest first.
func (repo *repositoryImpl) GetRecent(ctx context.Context, customerID int, limit uint) (table.Table, error) {
	query := repo.bookings().
		Join(goqu.T(roomModel.TableName).As("r"), goqu.On(
			col("r", roomModel.FieldHotelID).Eq(col("b", model.FieldHotelID)),
			col("r", roomModel.FieldRoomNumber).Eq(col("b", model.FieldRoomNumber)),
		)).
		Select(
			col("b", model.FieldHotelID),
			col("b", model.FieldRoomNumber),
			col("r", roomModel.FieldPrice),
			col("b", model.FieldBookingDate),
		).
		Where(col("b", model.FieldCustomerID).Eq(customerID)).
		Order(col("b", model.FieldBookingDate).Desc(), col("b", model.FieldID).Desc()).
		Limit(limit)

	return repo.Read(ctx, "GetRecent", query)
}

// GetHistory lists the bookings of a hotel made for dates between from and to inclusive.
func (repo *repositoryImpl) GetHistory(ctx context.Context, hotelID int, from, to time.Time) (table.Table, error) {
	query := repo.bookings().
		Join(goqu.T(userModel.TableName).As("u"), goqu.On(
			col("u", userModel.FieldID).Eq(col("b", model.FieldCustomerID)),
		)).
		Select(
			col("b", model.FieldID),
			col("u", userModel.FieldName),
			col("b", model.FieldHotelID),
			col("b", model.FieldRoomNumber),
			col("b", model.FieldBookingDate),
		).
		Where(
			col("b", model.FieldHotelID).Eq(hotelID),
			col("b", model.FieldBookingDate).Between(goqu.Range(shared.FormatSQLDate(from), shared.FormatSQLDate(to))),
		).
		Order(col("b", model.FieldBookingDate).Desc(), col("b", model.FieldID).Desc())

	return repo.Read(ctx, "GetHistory", query)
}

// GetRegularCustomers lists the customers with the most bookings at the hotel. Bookings made
// by staff accounts are not ranked.
func (repo *repositoryImpl) GetRegularCustomers(ctx context.Context, hotelID int, limit uint) (table.Table, error) {
	query := repo.bookings().
		Join(goqu.T(userModel.TableName).As("u"), goqu.On(
			col("u", userModel.FieldID).Eq(col("b", model.FieldCustomerID)),
		)).
		Select(
			col("u", userModel.FieldName),
			goqu.COUNT(goqu.Star()).As(model.ColumnNumBook),
		).
		Where(
			col("b", model.FieldHotelID).Eq(hotelID),
			col("u", userModel.FieldUserType).Eq(constant.RoleCustomer),
		).
		GroupBy(col("u", userModel.FieldID), col("u", userModel.FieldName)).
		Order(goqu.I(model.ColumnNumBook).Desc(), col("u", userModel.FieldName).Asc()).
		Limit(limit)

	return repo.Read(ctx, "GetRegularCustomers", query)
}
