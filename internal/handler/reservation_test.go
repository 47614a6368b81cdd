package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/hoteldesk/internal/billing"
	"github.com/hoteldesk/hoteldesk/internal/model"
	"github.com/hoteldesk/hoteldesk/internal/repository"
)

const (
	reservationSelect = `SELECT id, checkin, checkout, status, guest_id, room_id, staff_id FROM reservations WHERE id = ?`
	roomSelect        = `SELECT id, number, type, rate, status FROM rooms WHERE id = ?`
)

func newReservationHandler(t *testing.T) (*ReservationHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rooms := repository.NewRoomRepo(db)
	reservations := repository.NewReservationRepo(db)
	invoices := repository.NewInvoiceRepo(db)
	engine := billing.NewEngine(rooms, reservations)
	issuer := billing.NewIssuer(engine, invoices)
	return NewReservationHandler(reservations, engine, issuer, invoices), mock
}

func reservationRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "checkin", "checkout", "status", "guest_id", "room_id", "staff_id"}).
		AddRow(3, "2026-03-01", "2026-03-04", "confirmed", 1, 7, nil)
}

func pathContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, id string) echo.Context {
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func TestQuoteReservation(t *testing.T) {
	h, mock := newReservationHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(reservationSelect)).WithArgs(uint64(3)).WillReturnRows(reservationRow())
	mock.ExpectQuery(regexp.QuoteMeta(roomSelect)).WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "type", "rate", "status"}).
			AddRow(7, 101, nil, "99.99", model.RoomAvailable))
	mock.ExpectQuery(`SELECT rs\.service_id`).WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"service_id", "name", "description", "unit_cost", "quantity"}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/reservations/3/quote", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.QuoteReservation(pathContext(e, req, rec, "3")))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"nights":3`)
	assert.Contains(t, body, `"total":"299.97"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuoteReservationMissing(t *testing.T) {
	h, mock := newReservationHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(reservationSelect)).WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "checkin", "checkout", "status", "guest_id", "room_id", "staff_id"}))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/reservations/99/quote", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.QuoteReservation(pathContext(e, req, rec, "99")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReservationServiceUnknownService(t *testing.T) {
	h, mock := newReservationHandler(t)

	mock.ExpectQuery(regexp.QuoteMeta(reservationSelect)).WithArgs(uint64(3)).WillReturnRows(reservationRow())
	mock.ExpectExec("INSERT INTO reservation_services").
		WillReturnError(errors.New("Error 1452: Cannot add or update a child row"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations/3/services", strings.NewReader(`{"service_id":999}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.AddReservationService(pathContext(e, req, rec, "3")))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationRequiresReferences(t *testing.T) {
	h, _ := newReservationHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(`{"checkin":"2026-03-01","checkout":"2026-03-04"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateReservation(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReservationBadDate(t *testing.T) {
	h, _ := newReservationHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations",
		strings.NewReader(`{"checkin":"tomorrow","checkout":"2026-03-04","guest_id":1,"room_id":7}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateReservation(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
