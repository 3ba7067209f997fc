package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hmelikyan/wanderbot/internal/concurrency"
	"github.com/hmelikyan/wanderbot/internal/logger"
)

// decodeRequest decodes a JSON body into req. On failure the error response
// is already written and the handler should return.
func decodeRequest(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logger.FromContext(r.Context()).Warn("bad request body", "error", err)
		respondError(w, http.StatusBadRequest, msgInvalidRequest)
		return false
	}
	return true
}

// playerIDParam reads the {playerID} URL parameter. On failure the error
// response is already written.
func playerIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "playerID"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, msgInvalidRequest)
		return 0, false
	}
	return id, true
}

// withPlayerLock runs fn while holding the player's advisory lock, keeping
// interactive mutations serialized against each other and the sweeps.
func withPlayerLock(locks *concurrency.LockManager, playerID int64, fn func()) {
	lock := locks.GetLock(playerID)
	lock.Lock()
	defer lock.Unlock()
	fn()
}
