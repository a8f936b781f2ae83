// Package sections serves the store section names the UI scopes its
// views by ("Accessories Section", "CCTV Section", ...).
package sections

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Section is a named product area within a store.
type Section struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all sections ordered by name.
func (r *Repository) List(ctx context.Context) ([]Section, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM sections ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []Section
	for rows.Next() {
		var s Section
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}
