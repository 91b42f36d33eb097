package repo

import (
	"context"
	"errors"
	"testing"

	"scoring/internal/platform/store"
	"scoring/internal/platform/store/ch"
	"scoring/internal/services/api/scoring/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	r := NewCH().Bind(store.NewClickhouse(ch.New(db)))

	mock.ExpectQuery(`SELECT sum\(total_points\)`).
		WillReturnRows(sqlmock.NewRows([]string{"total_points", "days"}).AddRow(int64(9), uint64(3)))

	res, err := r.Aggregate(context.Background(), Build(daily, reqFor("2024-01-01", "2024-01-03")))
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	require.Equal(t, int64(9), res.Rows[0]["total_points"])

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("code: 60, table does not exist"))
	_, err = r.Aggregate(context.Background(), Build(daily, reqFor("2024-01-01", "2024-01-03")))
	require.ErrorContains(t, err, "code: 60")

	require.NoError(t, mock.ExpectationsWereMet())
}

func reqFor(from, to string) domain.ValidRequest {
	return domain.ValidRequest{DateFrom: from, DateTo: to, Limit: domain.DefaultLimit}
}
