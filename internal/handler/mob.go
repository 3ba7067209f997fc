package handler

import (
	"net/http"

	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/event"
	"github.com/hmelikyan/wanderbot/internal/mob"
)

// HandleTradeOffer rolls a trader offer for the encounter dialog.
func HandleTradeOffer(mobs mob.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: mobs.MakeTradeOffer()})
	}
}

// AcceptTradeRequest buys the trader's offer.
type AcceptTradeRequest struct {
	PlayerID int64  `json:"player_id"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// HandleAcceptTrade debits coin and credits the offered items.
func HandleAcceptTrade(mobs mob.Service, locks *concurrency.LockManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AcceptTradeRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 || req.Item == "" {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		offer := mob.TradeOffer{ItemName: req.Item, Quantity: req.Quantity, Price: req.Price}
		withPlayerLock(locks, req.PlayerID, func() {
			p, err := mobs.AcceptTrade(r.Context(), req.PlayerID, offer)
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Message: "trade accepted", Data: p})
		})
	}
}

// OpenChestResponse reports the chest drops.
type OpenChestResponse struct {
	Drops []event.ItemGrant `json:"drops"`
}

// HandleOpenChest consumes a key and opens the chest encounter.
func HandleOpenChest(mobs mob.Service, locks *concurrency.LockManager) http.HandlerFunc {
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
			_, drops, err := mobs.OpenChest(r.Context(), req.PlayerID)
			if err != nil {
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Message: "chest opened", Data: OpenChestResponse{Drops: drops}})
		})
	}
}
