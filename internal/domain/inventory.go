package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// UserItem is a single inventory stack owned by one player.
// A stackable stack carries a quantity; a usable stack is a single unit with
// a usage percentage and always has Quantity == 1. The ID is independent of
// the item name so that several partially-used instances of the same usable
// item can coexist.
type UserItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Usage    *float64 `json:"usage,omitempty"`
}

// IsUsable reports whether this stack is a usable instance.
func (u *UserItem) IsUsable() bool {
	return u.Usage != nil
}

// Inventory is a player's multiset of item stacks, keyed by item name with
// multiplicity only for usable items. Stacks keep insertion order; all
// single-stack operations match the first stack by insertion order.
type Inventory struct {
	Items []*UserItem `json:"items"`
}

// Add puts quantity units of the given item into the inventory.
// Usable items create one independent stack per unit, each initialized to
// the given usage percentage. Stackable items merge into the first existing
// stack with that name, or create one.
func (inv *Inventory) Add(def *ItemDef, quantity int, usage float64) {
	if quantity <= 0 {
		return
	}
	if def.Type == TypeUsable {
		for i := 0; i < quantity; i++ {
			u := usage
			inv.Items = append(inv.Items, &UserItem{
				ID:       uuid.NewString(),
				Name:     def.Name,
				Quantity: 1,
				Usage:    &u,
			})
		}
		return
	}
	for _, it := range inv.Items {
		if it.Name == def.Name && !it.IsUsable() {
			it.Quantity += quantity
			return
		}
	}
	inv.Items = append(inv.Items, &UserItem{
		ID:       uuid.NewString(),
		Name:     def.Name,
		Quantity: quantity,
	})
}

// Remove takes quantity units of the item out of the inventory, operating on
// a single matched stack only: the stack with the given id, or the first
// stack with that name by insertion order when id is empty. A usable stack
// is removed outright regardless of quantity. A stackable stack is
// decremented and deleted when it reaches zero; removing more than the stack
// holds fails with ErrInsufficientQuantity without mutation.
func (inv *Inventory) Remove(def *ItemDef, quantity int, id string) (*UserItem, error) {
	for i, it := range inv.Items {
		if it.Name != def.Name {
			continue
		}
		if id != "" && it.ID != id {
			continue
		}
		if it.IsUsable() {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return it, nil
		}
		if it.Quantity < quantity {
			return nil, fmt.Errorf("%w: %s (need %d, have %d)", ErrInsufficientQuantity, def.Name, quantity, it.Quantity)
		}
		it.Quantity -= quantity
		if it.Quantity <= 0 {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
		}
		return it, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, def.Name)
}

// GetAll returns every stack with the given name. Zero-quantity stacks are
// treated as absent.
func (inv *Inventory) GetAll(name string) []*UserItem {
	var items []*UserItem
	for _, it := range inv.Items {
		if it.Name == name && it.Quantity > 0 {
			items = append(items, it)
		}
	}
	return items
}

// Get returns the first stack with the given name by insertion order.
func (inv *Inventory) Get(name string) (*UserItem, error) {
	for _, it := range inv.Items {
		if it.Name == name && it.Quantity > 0 {
			return it, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, name)
}

// GetByID returns the stack with the given id.
func (inv *Inventory) GetByID(id string) (*UserItem, error) {
	for _, it := range inv.Items {
		if it.ID == id && it.Quantity > 0 {
			return it, nil
		}
	}
	return nil, fmt.Errorf("%w: id %s", ErrItemNotFound, id)
}

// Has reports whether at least one non-empty stack with the name exists.
func (inv *Inventory) Has(name string) bool {
	return len(inv.GetAll(name)) != 0
}

// Use depletes the usage of the first usable stack with the given name.
// The stack is removed once its usage reaches zero.
func (inv *Inventory) Use(name string, amount float64) error {
	for i, it := range inv.Items {
		if it.Name != name || !it.IsUsable() {
			continue
		}
		left := *it.Usage - amount
		if left <= 0 {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return nil
		}
		it.Usage = &left
		return nil
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, name)
}

// Compact drops stacks with quantity <= 0. It is the serialization
// contract: such stacks must never be persisted, so every save path runs it.
func (inv *Inventory) Compact() {
	kept := inv.Items[:0]
	for _, it := range inv.Items {
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	inv.Items = kept
}
