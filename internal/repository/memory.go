package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/hmelikyan/wanderbot/internal/domain"
)

// Memory is a map-backed Player repository. Aggregates are stored and
// returned as deep copies so callers never share mutable state with the
// store, matching the isolation the database backend provides.
type Memory struct {
	mu      sync.RWMutex
	players map[int64][]byte
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{players: make(map[int64][]byte)}
}

// Get returns a copy of the stored aggregate.
func (m *Memory) Get(_ context.Context, id int64) (*domain.Player, error) {
	m.mu.RLock()
	raw, ok := m.players[id]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrPlayerNotFound, id)
	}
	var p domain.Player
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode player %d: %w", id, err)
	}
	return &p, nil
}

// Upsert stores the aggregate, enforcing the revision check against the
// stored copy and bumping the revision on success.
func (m *Memory) Upsert(_ context.Context, p *domain.Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if raw, ok := m.players[p.ID]; ok {
		var stored domain.Player
		if err := json.Unmarshal(raw, &stored); err != nil {
			return fmt.Errorf("decode player %d: %w", p.ID, err)
		}
		if stored.Revision != p.Revision {
			return fmt.Errorf("%w: player %d (stored %d, loaded %d)",
				domain.ErrStaleRevision, p.ID, stored.Revision, p.Revision)
		}
	}

	p.Inventory.Compact()
	p.Revision++
	raw, err := json.Marshal(p)
	if err != nil {
		p.Revision--
		return fmt.Errorf("encode player %d: %w", p.ID, err)
	}
	m.players[p.ID] = raw
	return nil
}

// AllIDs returns every stored player ID in ascending order.
func (m *Memory) AllIDs(context.Context) ([]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, len(m.players))
	for id := range m.players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() {}
