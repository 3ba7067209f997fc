package handler

import (
	"net/http"

	"github.com/hmelikyan/wanderbot/internal/market"
)

// HandleListings returns the global storefront. The market service takes
// its own locks, so these handlers run without withPlayerLock.
func HandleListings(markets market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := markets.Listings(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: listings})
	}
}

// SellRequest puts an inventory stack up for sale.
type SellRequest struct {
	PlayerID int64  `json:"player_id"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// HandleSell lists an item on the market.
func HandleSell(markets market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 || req.Item == "" || req.Quantity <= 0 {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		p, err := markets.Sell(r.Context(), req.PlayerID, req.Item, req.Quantity, req.Price)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "listing added", Data: p})
	}
}

// BuyRequest purchases another player's listing.
type BuyRequest struct {
	PlayerID  int64  `json:"player_id"`
	SellerID  int64  `json:"seller_id"`
	ListingID string `json:"listing_id"`
}

// HandleBuy transfers a listing to the buyer.
func HandleBuy(markets market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 || req.SellerID <= 0 || req.ListingID == "" {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		p, err := markets.Buy(r.Context(), req.PlayerID, req.SellerID, req.ListingID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "listing bought", Data: p})
	}
}

// CancelListingRequest takes the player's own listing down.
type CancelListingRequest struct {
	PlayerID  int64  `json:"player_id"`
	ListingID string `json:"listing_id"`
}

// HandleCancelListing returns a listed stack to the inventory.
func HandleCancelListing(markets market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CancelListingRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.PlayerID <= 0 || req.ListingID == "" {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		p, err := markets.Cancel(r.Context(), req.PlayerID, req.ListingID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: "listing cancelled", Data: p})
	}
}

// MedianPriceResponse quotes the going price for an item.
type MedianPriceResponse struct {
	ItemName string `json:"item_name"`
	Price    int    `json:"price"`
}

// HandleMedianPrice quotes the market median for ?item=<name>.
func HandleMedianPrice(markets market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("item")
		if name == "" {
			respondError(w, http.StatusBadRequest, msgInvalidRequest)
			return
		}

		price, err := markets.MedianPrice(r.Context(), name)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: MedianPriceResponse{ItemName: name, Price: price}})
	}
}
