package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"
	ErrMsgStaleRevision  = "stale player revision"

	// Item errors
	ErrMsgItemNotFound = "item not found"
	ErrMsgItemIsCoin   = "item is the coin currency"

	// Inventory errors
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Action errors
	ErrMsgActionInProgress = "another action is in progress"
	ErrMsgTooHungry        = "too hungry to start an action"
	ErrMsgTooTired         = "too tired to start an action"
	ErrMsgLevelTooLow      = "player level is too low"
	ErrMsgInvalidState     = "invalid state for this operation"

	// Quest errors
	ErrMsgQuestIncomplete = "quest requirements are not met"

	// Achievement errors
	ErrMsgAchievementNotFound = "achievement not found"

	// Mob errors
	ErrMsgMobNotFound = "mob not found"

	// Crafting errors
	ErrMsgItemNotCraftable = "item has no craft recipe"

	// Daily gift errors
	ErrMsgGiftNotReady = "daily gift is not claimable yet"

	// Market errors
	ErrMsgMarketFull      = "market stall has no free slots"
	ErrMsgListingNotFound = "market listing not found"
)

// Common domain errors.
// These errors should be used consistently across all layers of the
// application. Wrap them with fmt.Errorf("%w: %s", domain.ErrXxx, details)
// for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)
	ErrStaleRevision  = errors.New(ErrMsgStaleRevision)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrItemIsCoin   = errors.New(ErrMsgItemIsCoin)

	// Inventory errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Action errors
	ErrActionInProgress = errors.New(ErrMsgActionInProgress)
	ErrTooHungry        = errors.New(ErrMsgTooHungry)
	ErrTooTired         = errors.New(ErrMsgTooTired)
	ErrLevelTooLow      = errors.New(ErrMsgLevelTooLow)
	ErrInvalidState     = errors.New(ErrMsgInvalidState)

	// Quest errors
	ErrQuestIncomplete = errors.New(ErrMsgQuestIncomplete)

	// Achievement errors
	ErrAchievementNotFound = errors.New(ErrMsgAchievementNotFound)

	// Mob errors
	ErrMobNotFound = errors.New(ErrMsgMobNotFound)

	// Crafting errors
	ErrItemNotCraftable = errors.New(ErrMsgItemNotCraftable)

	// Daily gift errors
	ErrGiftNotReady = errors.New(ErrMsgGiftNotReady)

	// Market errors
	ErrMarketFull      = errors.New(ErrMsgMarketFull)
	ErrListingNotFound = errors.New(ErrMsgListingNotFound)
)
