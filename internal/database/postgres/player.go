// Package postgres implements the player repository on PostgreSQL. The
// aggregate is stored as one JSONB document with a revision column for
// optimistic versioning.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hmelikyan/wanderbot/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL.
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository.
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Get loads the player aggregate.
func (r *PlayerRepository) Get(ctx context.Context, id int64) (*domain.Player, error) {
	var (
		doc      []byte
		revision int64
	)
	query := `SELECT doc, revision FROM players WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&doc, &revision)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrPlayerNotFound, id)
		}
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}

	var p domain.Player
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("failed to decode player %d: %w", id, err)
	}
	p.Revision = revision
	return &p, nil
}

// Upsert writes the aggregate. For an existing row the revision in the WHERE
// clause implements the optimistic check: zero rows updated means another
// writer got there first.
func (r *PlayerRepository) Upsert(ctx context.Context, p *domain.Player) error {
	p.Inventory.Compact()

	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode player %d: %w", p.ID, err)
	}

	query := `
		INSERT INTO players (id, doc, revision, updated_at)
		VALUES ($1, $2, $3 + 1, NOW())
		ON CONFLICT (id) DO UPDATE
		SET doc = EXCLUDED.doc, revision = players.revision + 1, updated_at = NOW()
		WHERE players.revision = $3
	`
	tag, err := r.db.Exec(ctx, query, p.ID, doc, p.Revision)
	if err != nil {
		return fmt.Errorf("failed to upsert player %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: player %d (loaded %d)", domain.ErrStaleRevision, p.ID, p.Revision)
	}
	p.Revision++
	return nil
}

// AllIDs returns every stored player ID.
func (r *PlayerRepository) AllIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM players ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list player ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan player id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Close releases the connection pool.
func (r *PlayerRepository) Close() {
	r.db.Close()
}
