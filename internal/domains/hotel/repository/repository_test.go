package repository_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/hotel/repository"
)

func newRepository(t *testing.T) (repository.Hotel, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = mockDB.Close() })

	return repository.New(postgres.NewFromDB(sqlx.NewDb(mockDB, "postgres")), mocks.NewOtel()), mock
}

func TestHotelRepository_GetNearby(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`FROM "hotel" WHERE calculate_distance\("latitude", "longitude", \$1, \$2\) <= \$3 ORDER BY "hotelid" ASC`).
		WithArgs(1.5, 2.5, 30.0).
		WillReturnRows(sqlmock.NewRows([]string{"hotelid", "hotelname", "latitude", "longitude", "dateestablished"}).
			AddRow(int64(1), "Seaside", "1.5", "2.5", "01/01/2000"))

	res, err := repo.GetNearby(context.Background(), 1.5, 2.5, 30)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Len())
	assert.Equal(t, "Seaside", res.Cell(0, 1).String)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHotelRepository_GetManagerID(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`SELECT "manageruserid" FROM "hotel" WHERE \("hotelid" = \$1\)`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"manageruserid"}).AddRow(int64(5)))
	mock.ExpectQuery(`SELECT "manageruserid" FROM "hotel"`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"manageruserid"}))

	managerID, found, err := repo.GetManagerID(context.Background(), 1)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 5, managerID)

	_, found, err = repo.GetManagerID(context.Background(), 2)
	assert.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}
