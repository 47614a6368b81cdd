package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// StaffRepo persists staff records. Like guests, staff members are plain
// records; the generic store does all the work.
type StaffRepo struct {
	store *Store[model.Staff]
}

// NewStaffRepo constructs a StaffRepo bound to the given database.
func NewStaffRepo(db *sql.DB) *StaffRepo {
	return &StaffRepo{store: NewStore(db, Mapping[model.Staff]{
		Table: "staff",
		Cols:  []string{"name", "role", "department"},
		Fields: func(s *model.Staff) []any {
			return []any{&s.Name, &s.Role, &s.Department}
		},
		ID:    func(s *model.Staff) uint64 { return s.ID },
		SetID: func(s *model.Staff, id uint64) { s.ID = id },
		Validate: func(s *model.Staff) error {
			s.Name = strings.TrimSpace(s.Name)
			if s.Name == "" {
				return ErrNameRequired
			}
			return nil
		},
		NotFound: ErrStaffNotFound,
	})}
}

// Save inserts or updates the staff member and returns its identity.
func (r *StaffRepo) Save(ctx context.Context, s *model.Staff) (uint64, error) {
	return r.store.Save(ctx, s)
}

// Get fetches a staff member by identity, returning ErrStaffNotFound when
// absent.
func (r *StaffRepo) Get(ctx context.Context, id uint64) (*model.Staff, error) {
	return r.store.Get(ctx, id)
}

// List returns all staff members ordered by identity.
func (r *StaffRepo) List(ctx context.Context) ([]*model.Staff, error) {
	return r.store.List(ctx)
}
