package billing

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/hoteldesk/internal/model"
	"github.com/hoteldesk/hoteldesk/internal/repository"
)

const (
	roomQuery = `SELECT id, number, type, rate, status FROM rooms WHERE id = ?`
	lineQuery = `SELECT rs\.service_id, s\.name, s\.description, s\.unit_cost, rs\.quantity`
)

func newEngine(t *testing.T) (*Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewEngine(repository.NewRoomRepo(db), repository.NewReservationRepo(db)), mock
}

func roomRows(rate string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "number", "type", "rate", "status"}).
		AddRow(7, 101, nil, rate, model.RoomAvailable)
}

func lineCols() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"service_id", "name", "description", "unit_cost", "quantity"})
}

func TestQuoteRoomOnly(t *testing.T) {
	e, mock := newEngine(t)

	mock.ExpectQuery(regexp.QuoteMeta(roomQuery)).WithArgs(uint64(7)).WillReturnRows(roomRows("99.99"))
	mock.ExpectQuery(lineQuery).WithArgs(uint64(3)).WillReturnRows(lineCols())

	res := &model.Reservation{ID: 3, CheckIn: "2026-03-01", CheckOut: "2026-03-04", GuestID: 1, RoomID: 7}
	q, err := e.Quote(context.Background(), res)
	require.NoError(t, err)

	assert.Equal(t, 3, q.Nights)
	assert.True(t, q.RoomSubtotal.Equal(decimal.RequireFromString("299.97")), "got %s", q.RoomSubtotal)
	assert.True(t, q.ServicesSubtotal.IsZero())
	assert.True(t, q.Total.Equal(decimal.RequireFromString("299.97")), "got %s", q.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteZeroNightsStillBillsServices(t *testing.T) {
	e, mock := newEngine(t)

	mock.ExpectQuery(regexp.QuoteMeta(roomQuery)).WithArgs(uint64(7)).WillReturnRows(roomRows("150.00"))
	mock.ExpectQuery(lineQuery).WithArgs(uint64(3)).
		WillReturnRows(lineCols().AddRow(2, "minibar", nil, "25.50", 2))

	res := &model.Reservation{ID: 3, CheckIn: "2026-03-01", CheckOut: "2026-03-01", GuestID: 1, RoomID: 7}
	q, err := e.Quote(context.Background(), res)
	require.NoError(t, err)

	assert.Equal(t, 0, q.Nights)
	assert.True(t, q.RoomSubtotal.IsZero())
	assert.True(t, q.Total.Equal(decimal.RequireFromString("51.00")), "got %s", q.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteInvertedRangeYieldsZeroNights(t *testing.T) {
	e, mock := newEngine(t)

	mock.ExpectQuery(regexp.QuoteMeta(roomQuery)).WithArgs(uint64(7)).WillReturnRows(roomRows("150.00"))
	mock.ExpectQuery(lineQuery).WithArgs(uint64(3)).WillReturnRows(lineCols())

	res := &model.Reservation{ID: 3, CheckIn: "2026-03-05", CheckOut: "2026-03-01", GuestID: 1, RoomID: 7}
	q, err := e.Quote(context.Background(), res)
	require.NoError(t, err)

	assert.Equal(t, 0, q.Nights)
	assert.True(t, q.Total.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteDuplicateLinksContributeIndependently(t *testing.T) {
	e, mock := newEngine(t)

	mock.ExpectQuery(regexp.QuoteMeta(roomQuery)).WithArgs(uint64(7)).WillReturnRows(roomRows("100.00"))
	mock.ExpectQuery(lineQuery).WithArgs(uint64(3)).
		WillReturnRows(lineCols().
			AddRow(5, "laundry", nil, "10.00", 1).
			AddRow(5, "laundry", nil, "10.00", 2))

	res := &model.Reservation{ID: 3, CheckIn: "2026-03-01", CheckOut: "2026-03-02", GuestID: 1, RoomID: 7}
	q, err := e.Quote(context.Background(), res)
	require.NoError(t, err)

	require.Len(t, q.Services, 2)
	assert.True(t, q.ServicesSubtotal.Equal(decimal.RequireFromString("30.00")), "got %s", q.ServicesSubtotal)
	assert.True(t, q.Total.Equal(decimal.RequireFromString("130.00")), "got %s", q.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteMixedStay(t *testing.T) {
	e, mock := newEngine(t)

	mock.ExpectQuery(regexp.QuoteMeta(roomQuery)).WithArgs(uint64(7)).WillReturnRows(roomRows("100.00"))
	mock.ExpectQuery(lineQuery).WithArgs(uint64(3)).
		WillReturnRows(lineCols().
			AddRow(1, "breakfast", nil, "15.00", 2).
			AddRow(2, "spa", nil, "15.00", 1))

	res := &model.Reservation{ID: 3, CheckIn: "2026-03-01", CheckOut: "2026-03-04", GuestID: 1, RoomID: 7}
	q, err := e.Quote(context.Background(), res)
	require.NoError(t, err)

	assert.True(t, q.RoomSubtotal.Equal(decimal.RequireFromString("300.00")))
	assert.True(t, q.ServicesSubtotal.Equal(decimal.RequireFromString("45.00")))
	assert.True(t, q.Total.Equal(decimal.RequireFromString("345.00")), "got %s", q.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteRejectsUnsavedReservation(t *testing.T) {
	e, mock := newEngine(t)

	res := &model.Reservation{CheckIn: "2026-03-01", CheckOut: "2026-03-04", GuestID: 1, RoomID: 7}
	_, err := e.Quote(context.Background(), res)
	assert.ErrorIs(t, err, repository.ErrUnsaved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuotePropagatesMissingRoom(t *testing.T) {
	e, mock := newEngine(t)

	mock.ExpectQuery(regexp.QuoteMeta(roomQuery)).WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "type", "rate", "status"}))

	res := &model.Reservation{ID: 3, CheckIn: "2026-03-01", CheckOut: "2026-03-04", GuestID: 1, RoomID: 99}
	_, err := e.Quote(context.Background(), res)
	assert.ErrorIs(t, err, repository.ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
