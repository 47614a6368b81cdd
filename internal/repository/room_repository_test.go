package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

func newRoomRepo(t *testing.T) (*RoomRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRoomRepo(db), mock
}

func TestRoomSaveRejectsNegativeRate(t *testing.T) {
	repo, mock := newRoomRepo(t)

	rm := &model.Room{Number: 101, Rate: decimal.RequireFromString("-1.00")}
	_, err := repo.Save(context.Background(), rm)
	assert.ErrorIs(t, err, ErrNegativeAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomSaveDefaultsStatusAndMapsDuplicateNumber(t *testing.T) {
	repo, mock := newRoomRepo(t)

	mock.ExpectExec("INSERT INTO rooms").
		WillReturnError(errors.New("Error 1062: Duplicate entry '101' for key 'rooms.number'"))

	rm := &model.Room{Number: 101, Rate: decimal.RequireFromString("99.99")}
	_, err := repo.Save(context.Background(), rm)
	assert.ErrorIs(t, err, ErrRoomNumberTaken)
	// Validate ran before the insert and filled in the default status.
	assert.Equal(t, model.RoomAvailable, rm.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomGetByNumber(t *testing.T) {
	repo, mock := newRoomRepo(t)

	rows := sqlmock.NewRows([]string{"id", "number", "type", "rate", "status"}).
		AddRow(7, 101, "double", "99.99", model.RoomAvailable)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, number, type, rate, status FROM rooms WHERE number = ?`)).
		WithArgs(uint32(101)).
		WillReturnRows(rows)

	rm, err := repo.GetByNumber(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), rm.ID)
	assert.True(t, rm.Rate.Equal(decimal.RequireFromString("99.99")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomGetByNumberMissing(t *testing.T) {
	repo, mock := newRoomRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, number, type, rate, status FROM rooms WHERE number = ?`)).
		WithArgs(uint32(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "type", "rate", "status"}))

	_, err := repo.GetByNumber(context.Background(), 999)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
