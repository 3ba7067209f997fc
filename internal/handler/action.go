package handler

import (
	"net/http"

	"github.com/hmelikyan/wanderbot/internal/action"
	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/domain"
)

// StartActionRequest begins a timed action.
type StartActionRequest struct {
	PlayerID int64  `json:"player_id"`
	Type     string `json:"type"`
}

// HandleStartAction starts a walk, work, sleep or game action.
func HandleStartAction(actions action.Service, locks *concurrency.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StartActionRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 || req.Type == "" {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		withPlayerLock(locks, req.PlayerID, func() {
			p, err := actions.Start(r.Context(), req.PlayerID, domain.ActionType(req.Type))
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Message: "action started", Data: p})
		})
	}
}

// HandlePollAction checks the current action: remaining time, a rolled
// encounter, or the resolution outcome.
func HandlePollAction(actions action.Service, locks *concurrency.LockManager) http.HandlerFunc {
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
			res, err := actions.Poll(r.Context(), req.PlayerID)
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Data: res})
		})
	}
}
