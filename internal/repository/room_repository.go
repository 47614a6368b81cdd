package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// ErrNegativeAmount is returned when saving a room rate or service cost
// below zero. Money values in this system are non-negative decimals.
var ErrNegativeAmount = errors.New("amount must not be negative")

// RoomRepo persists room records. Beyond the generic store primitives it
// enforces the hotel-wide uniqueness of room numbers and offers a lookup by
// room number for the front desk.
type RoomRepo struct {
	db    *sql.DB
	store *Store[model.Room]
}

// NewRoomRepo constructs a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db, store: NewStore(db, Mapping[model.Room]{
		Table: "rooms",
		Cols:  []string{"number", "type", "rate", "status"},
		Fields: func(rm *model.Room) []any {
			return []any{&rm.Number, &rm.Type, &rm.Rate, &rm.Status}
		},
		ID:    func(rm *model.Room) uint64 { return rm.ID },
		SetID: func(rm *model.Room, id uint64) { rm.ID = id },
		Validate: func(rm *model.Room) error {
			if rm.Rate.IsNegative() {
				return ErrNegativeAmount
			}
			if rm.Status == "" {
				rm.Status = model.RoomAvailable
			}
			return nil
		},
		NotFound: ErrRoomNotFound,
	})}
}

// Save inserts or updates the room and returns its identity. A duplicate
// room number surfaces as ErrRoomNumberTaken.
func (r *RoomRepo) Save(ctx context.Context, rm *model.Room) (uint64, error) {
	id, err := r.store.Save(ctx, rm)
	if isDuplicate(err) {
		return 0, ErrRoomNumberTaken
	}
	return id, err
}

// Get fetches a room by identity, returning ErrRoomNotFound when absent.
func (r *RoomRepo) Get(ctx context.Context, id uint64) (*model.Room, error) {
	return r.store.Get(ctx, id)
}

// GetByNumber fetches a room by its unique room number.
func (r *RoomRepo) GetByNumber(ctx context.Context, number uint32) (*model.Room, error) {
	const q = `SELECT id, number, type, rate, status FROM rooms WHERE number = ?`
	var rm model.Room
	err := r.db.QueryRowContext(ctx, q, number).
		Scan(&rm.ID, &rm.Number, &rm.Type, &rm.Rate, &rm.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

// List returns all rooms ordered by identity.
func (r *RoomRepo) List(ctx context.Context) ([]*model.Room, error) {
	return r.store.List(ctx)
}
