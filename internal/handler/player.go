package handler

import (
	"errors"
	"net/http"

	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/domain"
	"github.com/hmelikyan/wanderbot/internal/logger"
	"github.com/hmelikyan/wanderbot/internal/player"
)

// RegisterRequest creates or loads a player. ReferrerID is set when the
// newcomer arrived through another player's invite link.
type RegisterRequest struct {
	PlayerID   int64  `json:"player_id"`
	Name       string `json:"name"`
	Lang       string `json:"lang"`
	ReferrerID int64  `json:"referrer_id,omitempty"`
}

// HandleRegister loads the player, creating the aggregate on first contact.
// A valid referral on a fresh registration credits the referrer.
func HandleRegister(players player.Service, locks *concurrency.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 || req.Name == "" {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		// Referrals only count for genuinely new players.
		isNew := false
		if req.ReferrerID > 0 && req.ReferrerID != req.PlayerID {
			_, err := players.Get(r.Context(), req.PlayerID)
			isNew = errors.Is(err, domain.ErrPlayerNotFound)
		}

		var p *domain.Player
		var svcErr error
		withPlayerLock(locks, req.PlayerID, func() {
			p, svcErr = players.GetOrRegister(r.Context(), req.PlayerID, req.Name, req.Lang)
		})
		if svcErr != nil {
			respondServiceError(w, svcErr)
			return
		}

		// Credited outside the newcomer's lock: only the referrer mutates.
		if isNew {
			withPlayerLock(locks, req.ReferrerID, func() {
				if _, err := players.CreditReferral(r.Context(), req.ReferrerID); err != nil {
					logger.FromContext(r.Context()).Warn("referral credit failed",
						"referrer_id", req.ReferrerID, "error", err)
				}
			})
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: p})
	}
}

// HandleGetProfile returns the full player aggregate.
func HandleGetProfile(players player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerIDParam(w, r)
		if !ok {
			return
		}

		p, err := players.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: p})
	}
}

// UseItemRequest consumes one unit of an item.
type UseItemRequest struct {
	PlayerID int64  `json:"player_id"`
	Item     string `json:"item"`
}

// HandleUseItem applies a consumable's effect.
func HandleUseItem(players player.Service, locks *concurrency.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UseItemRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 || req.Item == "" {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		withPlayerLock(locks, req.PlayerID, func() {
			p, err := players.UseItem(r.Context(), req.PlayerID, req.Item)
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Message: "item used", Data: p})
		})
	}
}

// PlayerIDRequest is the body for operations keyed by player alone.
type PlayerIDRequest struct {
	PlayerID int64 `json:"player_id"`
}

// HandleClaimGift claims the daily gift.
func HandleClaimGift(players player.Service, locks *concurrency.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlayerIDRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		withPlayerLock(locks, req.PlayerID, func() {
			p, err := players.ClaimDailyGift(r.Context(), req.PlayerID)
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Message: "gift claimed", Data: p})
		})
	}
}

// UpgradeRequest picks a level-up upgrade.
type UpgradeRequest struct {
	PlayerID int64  `json:"player_id"`
	Choice   string `json:"choice"`
}

// HandleChooseUpgrade applies a level-up upgrade choice.
func HandleChooseUpgrade(players player.Service, locks *concurrency.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpgradeRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 || req.Choice == "" {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		withPlayerLock(locks, req.PlayerID, func() {
			p, err := players.ChooseUpgrade(r.Context(), req.PlayerID, player.UpgradeChoice(req.Choice))
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Message: "upgrade applied", Data: p})
		})
	}
}

// HandleCompleteQuest hands in the current quest.
func HandleCompleteQuest(players player.Service, locks *concurrency.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlayerIDRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		withPlayerLock(locks, req.PlayerID, func() {
			p, err := players.CompleteQuest(r.Context(), req.PlayerID)
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Message: "quest completed", Data: p})
		})
	}
}

// HandleSkipQuest pays the fee and rerolls the quest.
func HandleSkipQuest(players player.Service, locks *concurrency.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlayerIDRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		withPlayerLock(locks, req.PlayerID, func() {
			p, err := players.SkipQuest(r.Context(), req.PlayerID)
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Message: "quest skipped", Data: p})
		})
	}
}
