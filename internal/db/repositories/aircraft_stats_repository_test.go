package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gormModels "github.com/itallokavin/gestao-aeronaves/internal/models/gorm"
)

func newStatsRepo(t *testing.T) (*AircraftStatsRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewAircraftStatsRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestAircraftStatsRepository_CountUnsold(t *testing.T) {
	repo, mock := newStatsRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM aeronave WHERE vendido = FALSE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountUnsold(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAircraftStatsRepository_CountByDecade(t *testing.T) {
	repo, mock := newStatsRepo(t)

	mock.ExpectQuery("SELECT \\(ano / 10\\) \\* 10 AS decade").
		WillReturnRows(sqlmock.NewRows([]string{"decade", "total"}).
			AddRow(2010, 1).
			AddRow(2020, 1))

	got, err := repo.CountByDecade(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{2020: 1, 2010: 1}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAircraftStatsRepository_Error(t *testing.T) {
	repo, mock := newStatsRepo(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("connection reset"))

	_, err := repo.CountUnsold(context.Background())
	assert.ErrorContains(t, err, "connection reset")
}

func TestAircraftStatsRepository_SQLite(t *testing.T) {
	orm := setupTestDB(t)
	sqlDB, err := orm.DB()
	require.NoError(t, err)

	seed(t, NewAircraftRepository(orm),
		gormModels.Aircraft{Name: "a", Brand: "BOEING", Year: 2020, Description: "a"},
		gormModels.Aircraft{Name: "b", Brand: "BOEING", Year: 2015, Description: "b", Sold: true},
		gormModels.Aircraft{Name: "c", Brand: "AIRBUS", Year: 2011, Description: "c"},
		gormModels.Aircraft{Name: "d", Brand: "AIRBUS", Year: 1969, Description: "d"},
	)

	repo := NewAircraftStatsRepository(sqlx.NewDb(sqlDB, "sqlite3"))
	ctx := context.Background()

	unsold, err := repo.CountUnsold(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, unsold)

	byDecade, err := repo.CountByDecade(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{2020: 1, 2010: 2, 1960: 1}, byDecade)
}
