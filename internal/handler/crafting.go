package handler

import (
	"net/http"

	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/crafting"
)

// CraftRequest crafts count units of an item.
type CraftRequest struct {
	PlayerID int64  `json:"player_id"`
	Item     string `json:"item"`
	Count    int    `json:"count"`
}

// HandleCraft runs an all-or-nothing craft.
func HandleCraft(crafts crafting.Service, locks *concurrency.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CraftRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 || req.Item == "" {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}
		if req.Count == 0 {
			req.Count = 1
		}

		withPlayerLock(locks, req.PlayerID, func() {
			_, res, err := crafts.Craft(r.Context(), req.PlayerID, req.Item, req.Count)
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Message: "item crafted", Data: res})
		})
	}
}
