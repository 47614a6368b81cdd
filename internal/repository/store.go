package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// Mapping describes how one entity kind maps onto its table. The generic
// store is driven entirely by this description, so the insert-or-update,
// lookup and listing logic is written once and instantiated per entity kind
// instead of being duplicated across five repositories.
//
// Cols lists the non-identity columns in a fixed order and Fields returns
// pointers to the corresponding struct fields in the same order. The same
// pointer slice serves both as scan destinations and as statement
// arguments (the driver dereferences pointers on write).
type Mapping[T any] struct {
	Table    string              // table name
	Cols     []string            // non-identity columns, in Fields order
	Fields   func(*T) []any      // pointers to the fields matching Cols
	ID       func(*T) uint64     // current identity, zero when unsaved
	SetID    func(*T, uint64)    // records the store-assigned identity
	Validate func(*T) error      // optional pre-save validation
	NotFound error               // sentinel returned instead of sql.ErrNoRows
}

// Store is the generic record store for a single entity kind. It provides
// the three primitive operations every entity supports: Save (insert when
// no identity is assigned, update in place otherwise), Get by identity and
// List. Every write commits immediately; there is no deferred transaction
// window visible to the caller.
type Store[T any] struct {
	db *sql.DB
	m  Mapping[T]

	insertQ string
	updateQ string
	getQ    string
	listQ   string
}

// NewStore builds a Store for the given mapping. The SQL text for all four
// primitives is assembled once here.
func NewStore[T any](db *sql.DB, m Mapping[T]) *Store[T] {
	cols := strings.Join(m.Cols, ", ")
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(m.Cols)), ", ")
	sets := make([]string, len(m.Cols))
	for i, c := range m.Cols {
		sets[i] = c + " = ?"
	}
	return &Store[T]{
		db:      db,
		m:       m,
		insertQ: "INSERT INTO " + m.Table + " (" + cols + ") VALUES (" + marks + ")",
		updateQ: "UPDATE " + m.Table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?",
		getQ:    "SELECT id, " + cols + " FROM " + m.Table + " WHERE id = ?",
		listQ:   "SELECT id, " + cols + " FROM " + m.Table + " ORDER BY id",
	}
}

// Save persists the entity: an insert when no identity has been assigned
// yet, an update in place otherwise. On first insertion the store-assigned
// identity is recorded on the entity and returned; the identity never
// changes afterwards. Foreign-key violations surface as ErrIntegrity.
func (s *Store[T]) Save(ctx context.Context, e *T) (uint64, error) {
	if s.m.Validate != nil {
		if err := s.m.Validate(e); err != nil {
			return 0, err
		}
	}
	args := s.m.Fields(e)
	if id := s.m.ID(e); id != 0 {
		res, err := s.db.ExecContext(ctx, s.updateQ, append(args, id)...)
		if err != nil {
			if isFKViolation(err) {
				return 0, ErrIntegrity
			}
			return 0, err
		}
		// Zero rows affected means the identity no longer exists.
		if n, _ := res.RowsAffected(); n == 0 {
			if _, gerr := s.Get(ctx, id); gerr != nil {
				return 0, gerr
			}
		}
		return id, nil
	}
	res, err := s.db.ExecContext(ctx, s.insertQ, args...)
	if err != nil {
		if isFKViolation(err) {
			return 0, ErrIntegrity
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	s.m.SetID(e, uint64(id))
	return uint64(id), nil
}

// Get fetches a single entity by identity. The mapping's NotFound sentinel
// is returned when no row exists.
func (s *Store[T]) Get(ctx context.Context, id uint64) (*T, error) {
	e := new(T)
	var gotID uint64
	dest := append([]any{&gotID}, s.m.Fields(e)...)
	if err := s.db.QueryRowContext(ctx, s.getQ, id).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.m.NotFound
		}
		return nil, err
	}
	s.m.SetID(e, gotID)
	return e, nil
}

// List returns all entities of this kind ordered by identity. An empty
// slice is returned when the table is empty.
func (s *Store[T]) List(ctx context.Context) ([]*T, error) {
	rows, err := s.db.QueryContext(ctx, s.listQ)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		e := new(T)
		var id uint64
		dest := append([]any{&id}, s.m.Fields(e)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		s.m.SetID(e, id)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
