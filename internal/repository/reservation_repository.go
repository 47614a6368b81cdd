package repository

import (
	"context"
	"database/sql"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// ReservationRepo persists reservations and owns their set of service
// links. The reservation_services rows are exclusively owned by the
// reservation and are removed with it; rooms, guests and staff are merely
// referenced and the database's foreign keys enforce that those references
// resolve.
type ReservationRepo struct {
	db    *sql.DB
	store *Store[model.Reservation]
}

// NewReservationRepo constructs a ReservationRepo bound to the given
// database.
func NewReservationRepo(db *sql.DB) *ReservationRepo {
	return &ReservationRepo{db: db, store: NewStore(db, Mapping[model.Reservation]{
		Table: "reservations",
		Cols:  []string{"checkin", "checkout", "status", "guest_id", "room_id", "staff_id"},
		Fields: func(res *model.Reservation) []any {
			return []any{&res.CheckIn, &res.CheckOut, &res.Status, &res.GuestID, &res.RoomID, &res.StaffID}
		},
		ID:    func(res *model.Reservation) uint64 { return res.ID },
		SetID: func(res *model.Reservation, id uint64) { res.ID = id },
		Validate: func(res *model.Reservation) error {
			// Dates arrive in a handful of textual forms; they are stored
			// only in the canonical YYYY-MM-DD representation. An inverted
			// range is tolerated and simply yields zero nights.
			in, err := model.NormalizeDate(res.CheckIn)
			if err != nil {
				return err
			}
			out, err := model.NormalizeDate(res.CheckOut)
			if err != nil {
				return err
			}
			res.CheckIn, res.CheckOut = in, out
			return nil
		},
		NotFound: ErrReservationNotFound,
	})}
}

// Save inserts or updates the reservation and returns its identity. A
// guest, room or staff reference that does not resolve surfaces as
// ErrIntegrity from the store's foreign-key checks.
func (r *ReservationRepo) Save(ctx context.Context, res *model.Reservation) (uint64, error) {
	return r.store.Save(ctx, res)
}

// Get fetches a reservation by identity, returning ErrReservationNotFound
// when absent.
func (r *ReservationRepo) Get(ctx context.Context, id uint64) (*model.Reservation, error) {
	return r.store.Get(ctx, id)
}

// List returns all reservations ordered by identity.
func (r *ReservationRepo) List(ctx context.Context) ([]*model.Reservation, error) {
	return r.store.List(ctx)
}

// AddService appends a new service link to a saved reservation. A zero
// quantity defaults to one. The reservation must have been saved first;
// otherwise ErrUnsaved is returned and nothing is written. Whether the
// service exists is left to the database's foreign keys (ErrIntegrity).
// An identical link may be added any number of times; quantities on
// separate links are never merged.
func (r *ReservationRepo) AddService(ctx context.Context, res *model.Reservation, serviceID uint64, quantity uint32) error {
	if res.ID == 0 {
		return ErrUnsaved
	}
	if quantity == 0 {
		quantity = 1
	}
	const q = `INSERT INTO reservation_services (reservation_id, service_id, quantity) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, q, res.ID, serviceID, quantity); err != nil {
		if isFKViolation(err) {
			return ErrIntegrity
		}
		return err
	}
	return nil
}

// ListServices returns the reservation's service links joined with the
// current service details, in insertion order of the link rows. Each link
// is its own line even when the same service appears more than once.
func (r *ReservationRepo) ListServices(ctx context.Context, reservationID uint64) ([]model.ServiceLine, error) {
	const q = `SELECT rs.service_id, s.name, s.description, s.unit_cost, rs.quantity
	           FROM reservation_services rs
	           JOIN services s ON s.id = rs.service_id
	           WHERE rs.reservation_id = ?
	           ORDER BY rs.id`
	rows, err := r.db.QueryContext(ctx, q, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]model.ServiceLine, 0)
	for rows.Next() {
		var l model.ServiceLine
		if err := rows.Scan(&l.ServiceID, &l.Name, &l.Description, &l.UnitCost, &l.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Delete removes a reservation together with its service links inside one
// transaction. Invoices are never deleted here; a reservation that has
// been invoiced cannot be deleted and the attempt surfaces as
// ErrIntegrity. Returns ErrReservationNotFound when the identity does not
// exist.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM reservation_services WHERE reservation_id = ?`, id); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id); err != nil {
		if isFKViolation(err) {
			err = ErrIntegrity
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrReservationNotFound
		return err
	}
	return nil
}
