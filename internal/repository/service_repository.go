package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// ServiceRepo persists the catalog of additional services a reservation
// can attach (breakfast, laundry and so on).
type ServiceRepo struct {
	store *Store[model.Service]
}

// NewServiceRepo constructs a ServiceRepo bound to the given database.
func NewServiceRepo(db *sql.DB) *ServiceRepo {
	return &ServiceRepo{store: NewStore(db, Mapping[model.Service]{
		Table: "services",
		Cols:  []string{"name", "description", "unit_cost"},
		Fields: func(s *model.Service) []any {
			return []any{&s.Name, &s.Description, &s.UnitCost}
		},
		ID:    func(s *model.Service) uint64 { return s.ID },
		SetID: func(s *model.Service, id uint64) { s.ID = id },
		Validate: func(s *model.Service) error {
			s.Name = strings.TrimSpace(s.Name)
			if s.UnitCost.IsNegative() {
				return ErrNegativeAmount
			}
			return nil
		},
		NotFound: ErrServiceNotFound,
	})}
}

// Save inserts or updates the service and returns its identity.
func (r *ServiceRepo) Save(ctx context.Context, s *model.Service) (uint64, error) {
	return r.store.Save(ctx, s)
}

// Get fetches a service by identity, returning ErrServiceNotFound when
// absent.
func (r *ServiceRepo) Get(ctx context.Context, id uint64) (*model.Service, error) {
	return r.store.Get(ctx, id)
}

// List returns the whole service catalog ordered by identity.
func (r *ServiceRepo) List(ctx context.Context) ([]*model.Service, error) {
	return r.store.List(ctx)
}
