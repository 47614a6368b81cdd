package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/hoteldesk/hoteldesk/internal/model"
)

// ErrNameRequired is returned when saving a guest or staff member whose
// name is empty after trimming.
var ErrNameRequired = errors.New("name is required")

// GuestRepo persists guest records. Guests are pure data containers with
// identity; all persistence logic lives in the generic store and this type
// only supplies the column mapping.
type GuestRepo struct {
	store *Store[model.Guest]
}

// NewGuestRepo constructs a GuestRepo bound to the given database.
func NewGuestRepo(db *sql.DB) *GuestRepo {
	return &GuestRepo{store: NewStore(db, Mapping[model.Guest]{
		Table: "guests",
		Cols:  []string{"name", "document", "birthdate", "nationality", "address"},
		Fields: func(g *model.Guest) []any {
			return []any{&g.Name, &g.Document, &g.Birthdate, &g.Nationality, &g.Address}
		},
		ID:    func(g *model.Guest) uint64 { return g.ID },
		SetID: func(g *model.Guest, id uint64) { g.ID = id },
		Validate: func(g *model.Guest) error {
			g.Name = strings.TrimSpace(g.Name)
			if g.Name == "" {
				return ErrNameRequired
			}
			if g.Birthdate != nil {
				bd, err := model.NormalizeDate(*g.Birthdate)
				if err != nil {
					return err
				}
				g.Birthdate = &bd
			}
			return nil
		},
		NotFound: ErrGuestNotFound,
	})}
}

// Save inserts the guest when it has no identity yet and updates it in
// place otherwise. The assigned identity is returned.
func (r *GuestRepo) Save(ctx context.Context, g *model.Guest) (uint64, error) {
	return r.store.Save(ctx, g)
}

// Get fetches a guest by identity, returning ErrGuestNotFound when absent.
func (r *GuestRepo) Get(ctx context.Context, id uint64) (*model.Guest, error) {
	return r.store.Get(ctx, id)
}

// List returns all guests ordered by identity.
func (r *GuestRepo) List(ctx context.Context) ([]*model.Guest, error) {
	return r.store.List(ctx)
}
