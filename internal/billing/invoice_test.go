package billing

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/hoteldesk/internal/model"
	"github.com/hoteldesk/hoteldesk/internal/repository"
)

const invoiceInsert = `INSERT INTO invoices (issue_date, total, reservation_id) VALUES (?, ?, ?)`

func newIssuer(t *testing.T) (*Issuer, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	engine := NewEngine(repository.NewRoomRepo(db), repository.NewReservationRepo(db))
	return NewIssuer(engine, repository.NewInvoiceRepo(db)), mock
}

func TestGenerateSnapshotsCurrentTotal(t *testing.T) {
	iss, mock := newIssuer(t)
	today := time.Now().UTC().Format(model.DateLayout)

	mock.ExpectQuery(regexp.QuoteMeta(roomQuery)).WithArgs(uint64(7)).WillReturnRows(roomRows("99.99"))
	mock.ExpectQuery(lineQuery).WithArgs(uint64(3)).WillReturnRows(lineCols())
	mock.ExpectExec(regexp.QuoteMeta(invoiceInsert)).
		WithArgs(today, sqlmock.AnyArg(), uint64(3)).
		WillReturnResult(sqlmock.NewResult(11, 1))

	res := &model.Reservation{ID: 3, CheckIn: "2026-03-01", CheckOut: "2026-03-04", GuestID: 1, RoomID: 7}
	inv, err := iss.Generate(context.Background(), res)
	require.NoError(t, err)

	assert.Equal(t, uint64(11), inv.ID)
	assert.Equal(t, uint64(3), inv.ReservationID)
	assert.Equal(t, today, inv.IssueDate)
	assert.True(t, inv.Total.Equal(decimal.RequireFromString("299.97")), "got %s", inv.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateRejectsUnsavedReservation(t *testing.T) {
	iss, mock := newIssuer(t)

	res := &model.Reservation{CheckIn: "2026-03-01", CheckOut: "2026-03-04", GuestID: 1, RoomID: 7}
	_, err := iss.Generate(context.Background(), res)
	assert.ErrorIs(t, err, repository.ErrUnsaved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Re-issuing after a rate change produces a second, independent invoice
// with the new total; the first snapshot is untouched.
func TestGenerateAgainAfterRateChange(t *testing.T) {
	iss, mock := newIssuer(t)
	res := &model.Reservation{ID: 3, CheckIn: "2026-03-01", CheckOut: "2026-03-03", GuestID: 1, RoomID: 7}

	mock.ExpectQuery(regexp.QuoteMeta(roomQuery)).WithArgs(uint64(7)).WillReturnRows(roomRows("100.00"))
	mock.ExpectQuery(lineQuery).WithArgs(uint64(3)).WillReturnRows(lineCols())
	mock.ExpectExec(regexp.QuoteMeta(invoiceInsert)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), uint64(3)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	first, err := iss.Generate(context.Background(), res)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(roomQuery)).WithArgs(uint64(7)).WillReturnRows(roomRows("120.00"))
	mock.ExpectQuery(lineQuery).WithArgs(uint64(3)).WillReturnRows(lineCols())
	mock.ExpectExec(regexp.QuoteMeta(invoiceInsert)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), uint64(3)).
		WillReturnResult(sqlmock.NewResult(2, 1))

	second, err := iss.Generate(context.Background(), res)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, first.Total.Equal(decimal.RequireFromString("200.00")), "got %s", first.Total)
	assert.True(t, second.Total.Equal(decimal.RequireFromString("240.00")), "got %s", second.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
