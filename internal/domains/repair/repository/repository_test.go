package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/repair/model"
	"hotel/internal/domains/repair/repository"
)

func newRepository(t *testing.T) (repository.Repair, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = mockDB.Close() })

	return repository.New(postgres.NewFromDB(sqlx.NewDb(mockDB, "postgres")), mocks.NewOtel()), mock
}

func TestRepairRepository_Inserts(t *testing.T) {
	repo, mock := newRepository(t)

	now := time.Date(2024, time.May, 2, 9, 30, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO "roomrepairs" \("companyid", "hotelid", "repairdate", "roomnumber"\)`).
		WithArgs(3, 1, "2024-05-02", 101).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO "roomrepairrequests" \("companyid", "hotelid", "managerid", "requestedon", "roomnumber"\)`).
		WithArgs(3, 1, 5, now, 101).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.InsertRepair(context.Background(), model.Repair{CompanyID: 3, HotelID: 1, RoomNumber: 101, RepairDate: "2024-05-02"}))
	assert.NoError(t, repo.InsertRequest(context.Background(), model.Request{ManagerID: 5, CompanyID: 3, HotelID: 1, RoomNumber: 101, RequestedOn: now}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepairRepository_CompanyExist(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`SELECT "companyid" FROM "maintenancecompany" WHERE \("companyid" = \$1\) LIMIT \$2`).
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"companyid"}).AddRow(int64(3)))

	exist, err := repo.CompanyExist(context.Background(), 3)

	assert.NoError(t, err)
	assert.True(t, exist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepairRepository_GetHistory(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`FROM "roomrepairs" WHERE \("hotelid" = \$1\) ORDER BY "repairdate" DESC, "repairid" DESC`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"companyid", "hotelid", "roomnumber", "repairdate"}).
			AddRow(int64(3), int64(1), int64(101), time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)))

	res, err := repo.GetHistory(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "05/02/2024", res.Cell(0, 3).String)
	assert.NoError(t, mock.ExpectationsWereMet())
}
