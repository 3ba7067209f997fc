// Package action runs the timed-activity state machine: a player starts an
// exclusive action (walk, work, sleep, game), polls it while it runs, and
// the poll that lands after the end time resolves it into loot, XP and stat
// changes. Mid-walk polls may also roll a wandering encounter.
package action

import (
	"context"
	"fmt"
	"time"

	"github.com/hmelikyan/wanderbot/internal/catalog"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/metrics"
	"github.com/hmelikyan/wanderbot/internal/mob"
	"github.com/hmelikyan/wanderbot/internal/player"
	"github.com/hmelikyan/wanderbot/internal/repository"
	"github.com/hmelikyan/wanderbot/internal/utils"
	"github.com/hmelikyan/wanderbot/internal/weather"
)

// Stat gates for starting any action.
const (
	minHungerToAct  = 20
	minFatigueToAct = 20
)

// State describes what a poll found.
type State string

const (
	StateInProgress State = "in_progress"
	StateEncounter  State = "encounter"
	StateResolved   State = "resolved"
)

// Outcome is what a resolved action yielded.
type Outcome struct {
	Action domain.ActionType `json:"action"`
	XP     float64           `json:"xp"`
	Coin   int               `json:"coin"`
	Loot   []event.ItemGrant `json:"loot,omitempty"`
}

// PollResult is the answer to a single poll.
type PollResult struct {
	State     State         `json:"state"`
	Remaining time.Duration `json:"remaining,omitempty"`
	Mob       *mob.Def      `json:"mob,omitempty"`
	Outcome   *Outcome      `json:"outcome,omitempty"`
}

// Service drives timed player actions.
type Service interface {
	Start(ctx context.Context, playerID int64, t domain.ActionType) (*domain.Player, error)
	Poll(ctx context.Context, playerID int64) (*PollResult, error)
}

type service struct {
	repo      repository.Player
	players   player.Service
	catalog   *catalog.Catalog
	weather   weather.Provider
	publisher event.Bus
	rng       *utils.Rand
	now       func() time.Time
}

// NewService creates the action engine.
func NewService(repo repository.Player, players player.Service, cat *catalog.Catalog, wp weather.Provider, publisher event.Bus, rng *utils.Rand) Service {
	return &service{
		repo:      repo,
		players:   players,
		catalog:   cat,
		weather:   wp,
		publisher: publisher,
		rng:       rng,
		now:       time.Now,
	}
}

// Start begins an action of the given type. One action at a time; the player
// must be fed and rested enough to act.
func (s *service) Start(ctx context.Context, playerID int64, t domain.ActionType) (*domain.Player, error) {
	pol, ok := policies[t]
	if !ok {
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidState, t)
	}

	p, err := s.repo.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if p.Action != nil {
		return nil, fmt.Errorf("%w: %s until %s", domain.ErrActionInProgress, p.Action.Type, p.Action.End.Format(time.RFC3339))
	}
	if p.Hunger <= minHungerToAct {
		return nil, domain.ErrTooHungry
	}
	if p.Fatigue <= minFatigueToAct {
		return nil, domain.ErrTooTired
	}
	if p.Level < pol.minLevel {
		return nil, fmt.Errorf("%w: need level %d", domain.ErrLevelTooLow, pol.minLevel)
	}

	start := s.now()
	p.Action = &domain.Action{
		Type:  t,
		Start: start,
		End:   start.Add(pol.duration(s.rng)),
	}
	p.LastActiveAt = start

	if err := s.players.Save(ctx, p); err != nil {
		return nil, err
	}
	metrics.ActionsStarted.WithLabelValues(string(t)).Inc()
	logger.FromContext(ctx).Info("action started",
		"player_id", playerID, "action", t, "end", p.Action.End)
	return p, nil
}

// Poll checks on the current action. Before the end time it reports the
// remaining duration and may roll an encounter; at or after the end time it
// resolves the action.
func (s *service) Poll(ctx context.Context, playerID int64) (*PollResult, error) {
	p, err := s.repo.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if p.Action == nil {
		return nil, fmt.Errorf("%w: no action in progress", domain.ErrInvalidState)
	}

	now := s.now()
	if !p.Action.Done(now) {
		if m := s.rollEncounter(ctx, p, now); m != nil {
			return &PollResult{State: StateEncounter, Remaining: p.Action.Remaining(now), Mob: m}, nil
		}
		return &PollResult{State: StateInProgress, Remaining: p.Action.Remaining(now)}, nil
	}

	outcome, err := s.resolve(ctx, p)
	if err != nil {
		return nil, err
	}
	return &PollResult{State: StateResolved, Outcome: outcome}, nil
}

// rollEncounter fires at most one mob per action, and only while there is
// enough time left for the player to deal with it.
func (s *service) rollEncounter(ctx context.Context, p *domain.Player, now time.Time) *mob.Def {
	if p.MetMob {
		return nil
	}
	grace := s.rng.DurationBetween(15*time.Minute, 20*time.Minute)
	if p.Action.Remaining(now) < grace {
		return nil
	}

	m := mob.Roll(s.rng)
	if m == nil {
		return nil
	}

	p.MetMob = true
	if err := s.players.Save(ctx, p); err != nil {
		logger.FromContext(ctx).Error("persist encounter", "player_id", p.ID, "error", err)
		return nil
	}
	if err := s.publisher.Publish(ctx, event.NewEncounterEvent(p.ID, m.Name)); err != nil {
		logger.FromContext(ctx).Warn("publish encounter event", "player_id", p.ID, "error", err)
	}
	logger.FromContext(ctx).Info("encounter", "player_id", p.ID, "mob", m.Name)
	return m
}

func (s *service) resolve(ctx context.Context, p *domain.Player) (*Outcome, error) {
	pol := policies[p.Action.Type]
	outcome := pol.resolve(s, ctx, p)

	for _, grant := range outcome.Loot {
		item, err := s.catalog.Item(grant.Name)
		if err != nil {
			continue
		}
		if item.IsCoin() {
			p.Coin += grant.Quantity
		} else {
			p.Inventory.Add(item, grant.Quantity, 100)
		}
	}
	p.Coin += outcome.Coin
	p.XP += outcome.XP
	p.Achievements.IncrProgress(pol.achievement, 1)

	p.Action = nil
	p.MetMob = false
	p.Notification.ClearAction(outcome.Action)

	if err := s.players.CheckStatus(ctx, p); err != nil {
		return nil, err
	}
	if err := s.players.Save(ctx, p); err != nil {
		return nil, err
	}

	ev := event.NewActionCompletedEvent(p.ID, outcome.Action, outcome.XP, outcome.Coin, outcome.Loot)
	if err := s.publisher.Publish(ctx, ev); err != nil {
		logger.FromContext(ctx).Warn("publish action event", "player_id", p.ID, "error", err)
	}
	logger.FromContext(ctx).Info("action resolved",
		"player_id", p.ID, "action", outcome.Action, "xp", outcome.XP, "coin", outcome.Coin)
	return outcome, nil
}
