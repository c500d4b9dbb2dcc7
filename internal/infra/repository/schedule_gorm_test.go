package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	return gdb, mock
}

// An empty listing must come back as an empty slice so the handlers
// serialize it as [], never null.
func TestListActiveAppointmentsEmpty(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE is_active = true`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewScheduleGormRepository(gdb)

	aps, err := repo.ListActiveAppointments(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, aps)
	assert.Len(t, aps, 0)
	assert.NoError(t, mock.ExpectationsWereMet())
}
