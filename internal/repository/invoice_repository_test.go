package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

func newInvoiceRepo(t *testing.T) (*InvoiceRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewInvoiceRepo(db), mock
}

func TestInvoiceCreateAssignsIdentity(t *testing.T) {
	repo, mock := newInvoiceRepo(t)

	mock.ExpectExec("INSERT INTO invoices").
		WithArgs("2026-08-29", "299.97", uint64(3)).
		WillReturnResult(sqlmock.NewResult(11, 1))

	inv := &model.Invoice{IssueDate: "2026-08-29", Total: decimal.RequireFromString("299.97"), ReservationID: 3}
	id, err := repo.Create(context.Background(), inv)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), id)
	assert.Equal(t, uint64(11), inv.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceCreateRefusesExistingRow(t *testing.T) {
	repo, mock := newInvoiceRepo(t)

	inv := &model.Invoice{ID: 11, IssueDate: "2026-08-29", Total: decimal.Zero, ReservationID: 3}
	_, err := repo.Create(context.Background(), inv)
	assert.ErrorIs(t, err, ErrImmutableInvoice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceListByReservation(t *testing.T) {
	repo, mock := newInvoiceRepo(t)

	rows := sqlmock.NewRows([]string{"id", "issue_date", "total", "reservation_id"}).
		AddRow(1, "2026-08-01", "200.00", 3).
		AddRow(2, "2026-08-15", "240.00", 3)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, issue_date, total, reservation_id FROM invoices WHERE reservation_id = ?`)).
		WithArgs(uint64(3)).
		WillReturnRows(rows)

	got, err := repo.ListByReservation(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Total.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, got[1].Total.Equal(decimal.RequireFromString("240.00")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
