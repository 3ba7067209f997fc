// Package repository defines the player persistence contract and the
// in-memory implementation used in tests and single-node deployments.
package repository

import (
	"context"

	"github.com/hmelikyan/wanderbot/internal/domain"
)

// Player is the persistence contract for the player aggregate. The whole
// aggregate is read and written as one document.
//
// Upsert enforces optimistic versioning: it fails with
// domain.ErrStaleRevision when the stored revision no longer matches the
// revision the aggregate was loaded with, and bumps the revision on success.
type Player interface {
	Get(ctx context.Context, id int64) (*domain.Player, error)
	Upsert(ctx context.Context, p *domain.Player) error
	AllIDs(ctx context.Context) ([]int64, error)
	Close()
}
