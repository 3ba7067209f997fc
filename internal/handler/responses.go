// Package handler holds the HTTP handlers for the game operations. Handlers
// are thin: decode, take the player's advisory lock, call the service, map
// domain errors to user-facing responses.
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/hmelikyan/wanderbot/internal/domain"
)

// SuccessResponse is a simple message response.
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse wraps a data payload.
type DataResponse struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("encode response", "error", err)
		return
	}
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("write response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing messages for guarded refusals.
const (
	msgInvalidRequest       = "Invalid request body"
	msgPlayerNotFound       = "Player not found"
	msgItemNotFound         = "You don't have that item"
	msgItemIsCoin           = "Coins cannot be used like an item"
	msgInsufficientQuantity = "Not enough items"
	msgInsufficientFunds    = "Not enough coins"
	msgActionInProgress     = "Another action is already in progress"
	msgTooHungry            = "Too hungry to do that, eat something first"
	msgTooTired             = "Too tired to do that, get some rest first"
	msgLevelTooLow          = "Your level is too low for that"
	msgQuestIncomplete      = "The quest is not finished yet"
	msgItemNotCraftable     = "That item cannot be crafted"
	msgGiftNotReady         = "The daily gift is not ready yet"
	msgMobNotFound          = "There is no such creature"
	msgMarketFull           = "Your stall has no free slots"
	msgListingNotFound      = "That listing is no longer for sale"
	msgConflict             = "The player changed meanwhile, try again"
	msgInvalidState         = "That cannot be done right now"
	msgServerError          = "Something went wrong"
)

// mapServiceError converts a domain sentinel into an HTTP status and a short
// user message. Unrecognized errors surface as a generic 500.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, msgPlayerNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusBadRequest, msgItemNotFound
	case errors.Is(err, domain.ErrItemIsCoin):
		return http.StatusBadRequest, msgItemIsCoin
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusBadRequest, msgInsufficientQuantity
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, msgInsufficientFunds
	case errors.Is(err, domain.ErrActionInProgress):
		return http.StatusConflict, msgActionInProgress
	case errors.Is(err, domain.ErrTooHungry):
		return http.StatusBadRequest, msgTooHungry
	case errors.Is(err, domain.ErrTooTired):
		return http.StatusBadRequest, msgTooTired
	case errors.Is(err, domain.ErrLevelTooLow):
		return http.StatusBadRequest, msgLevelTooLow
	case errors.Is(err, domain.ErrQuestIncomplete):
		return http.StatusBadRequest, msgQuestIncomplete
	case errors.Is(err, domain.ErrItemNotCraftable):
		return http.StatusBadRequest, msgItemNotCraftable
	case errors.Is(err, domain.ErrGiftNotReady):
		return http.StatusBadRequest, msgGiftNotReady
	case errors.Is(err, domain.ErrMobNotFound):
		return http.StatusNotFound, msgMobNotFound
	case errors.Is(err, domain.ErrMarketFull):
		return http.StatusBadRequest, msgMarketFull
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, msgListingNotFound
	case errors.Is(err, domain.ErrStaleRevision):
		return http.StatusConflict, msgConflict
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusBadRequest, msgInvalidState
	default:
		return http.StatusInternalServerError, msgServerError
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceError(err)
	respondError(w, status, msg)
}
