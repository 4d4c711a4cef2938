package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"gdhealth/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var equipmentRowColumns = []string{"id", "employee_id", "item_name", "item_price", "active", "created_at", "updated_at"}

func TestEquipmentRepository_Count(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  domain.EquipmentFilter
		mock    func(mock sqlmock.Sqlmock)
		want    int
		wantErr bool
		errIs   error
	}{
		{
			name:   "no filter",
			filter: domain.EquipmentFilter{},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM sports_equipment$`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(100))
			},
			want: 100,
		},
		{
			name:   "name filter escapes like wildcards",
			filter: domain.EquipmentFilter{Type: domain.EquipmentSearchName, Keyword: "50%_mat"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sports_equipment WHERE item_name ILIKE \$1`).
					WithArgs(`%50\%\_mat%`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
			},
			want: 2,
		},
		{
			name:   "active filter lower case",
			filter: domain.EquipmentFilter{Type: domain.EquipmentSearchActive, Keyword: "n"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sports_equipment WHERE active = \$1`).
					WithArgs(false).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
			},
			want: 4,
		},
		{
			name:    "bad active keyword",
			filter:  domain.EquipmentFilter{Type: domain.EquipmentSearchActive, Keyword: "maybe"},
			mock:    func(mock sqlmock.Sqlmock) {},
			wantErr: true,
			errIs:   domain.ErrInvalidInput,
		},
		{
			name:    "unknown search type",
			filter:  domain.EquipmentFilter{Type: "price", Keyword: "10"},
			mock:    func(mock sqlmock.Sqlmock) {},
			wantErr: true,
			errIs:   domain.ErrInvalidInput,
		},
		{
			name:   "db error",
			filter: domain.EquipmentFilter{},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT COUNT`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEquipmentRepository(db)
			got, err := repo.Count(ctx, tt.filter)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEquipmentRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("unfiltered window", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM sports_equipment ORDER BY id DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(8, 96).
			WillReturnRows(sqlmock.NewRows(equipmentRowColumns).
				AddRow(4, 1, "Dumbbell 5kg", 30000, true, now, now).
				AddRow(3, 1, "Yoga mat", 15000, false, now, now))

		items, err := NewEquipmentRepository(db).List(ctx, domain.EquipmentFilter{}, 96, 8)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(4), items[0].ID)
		assert.Equal(t, "Yoga mat", items[1].ItemName)
		assert.False(t, items[1].Active)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filtered placeholders follow filter args", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE item_name ILIKE \$1 ESCAPE '\\' ORDER BY id DESC LIMIT \$2 OFFSET \$3`).
			WithArgs("%mat%", 8, 0).
			WillReturnRows(sqlmock.NewRows(equipmentRowColumns))

		items, err := NewEquipmentRepository(db).List(ctx, domain.EquipmentFilter{Type: domain.EquipmentSearchName, Keyword: "mat"}, 0, 8)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEquipmentRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewEquipmentRepository(db)

	mock.ExpectQuery(`FROM sports_equipment WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(equipmentRowColumns).AddRow(9, 2, "Kettlebell", 45000, true, now, now))
	eq, err := repo.GetByID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), eq.EmployeeID)

	mock.ExpectQuery(`FROM sports_equipment WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(equipmentRowColumns))
	_, err = repo.GetByID(ctx, 10)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEquipmentRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sports_equipment`)).
					WithArgs(int64(1), "Rowing machine", int64(1200000), true, now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(77))
			},
			wantID: 77,
		},
		{
			name: "unique violation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO sports_equipment`)).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			eq := &domain.Equipment{EmployeeID: 1, ItemName: "Rowing machine", ItemPrice: 1200000, Active: true, CreatedAt: now, UpdatedAt: now}
			err = NewEquipmentRepository(db).Create(ctx, eq)
			if tt.wantErr {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, eq.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEquipmentRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE sports_equipment`).
					WithArgs("Treadmill", int64(2500000), int64(3), now, int64(5)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found zero rows affected",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE sports_equipment`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
			errIs:   domain.ErrNotFound,
		},
		{
			name: "unique violation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE sports_equipment`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewEquipmentRepository(db).Update(ctx, &domain.Equipment{ID: 5, EmployeeID: 3, ItemName: "Treadmill", ItemPrice: 2500000, UpdatedAt: now})
			if tt.wantErr {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEquipmentRepository_SetActive(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewEquipmentRepository(db)

	mock.ExpectExec(`UPDATE sports_equipment SET active = \$1`).
		WithArgs(false, int64(3), now, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SetActive(ctx, 5, 3, false, now))

	mock.ExpectExec(`UPDATE sports_equipment SET active = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.SetActive(ctx, 6, 3, false, now), domain.ErrNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
