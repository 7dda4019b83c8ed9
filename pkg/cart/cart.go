package cart

import (
	"errors"
	"fmt"

	"github.com/feastworks/feast-api-types/orders"
)

// ErrRestaurantConflict is returned by Add when the cart already holds lines
// from a different restaurant. The caller decides whether to Clear and retry;
// the cart itself never discards lines implicitly.
var ErrRestaurantConflict = errors.New("cart holds items from another restaurant")

// ErrBrokenSnapshot is returned by Restore for snapshots violating cart
// invariants.
var ErrBrokenSnapshot = errors.New("broken cart snapshot")

// Line is one distinct menu item and its quantity within a cart.
type Line struct {
	ItemId    int64   `yaml:"itemId" json:"itemId"`
	Name      string  `yaml:"name" json:"name"`
	UnitPrice float64 `yaml:"unitPrice" json:"unitPrice"`
	Quantity  int     `yaml:"quantity" json:"quantity"`
}

// SnapshotVersion is the version of the snapshot record format.
//
// Bump it when Snapshot changes incompatibly.
const SnapshotVersion = 1

// Snapshot is the serialized form of a Cart.
//
// It is a plain record with an explicit version so that stored drafts stay
// readable across releases.
type Snapshot struct {
	Version        int    `yaml:"version" json:"version"`
	RestaurantId   int64  `yaml:"restaurantId,omitempty" json:"restaurantId,omitempty"`
	RestaurantName string `yaml:"restaurantName,omitempty" json:"restaurantName,omitempty"`
	Lines          []Line `yaml:"lines" json:"lines"`
}

// Cart is the client-held draft of an order before submission.
//
// All lines belong to the single bound restaurant; the binding exists iff the
// cart is non-empty. Totals are always derived from lines, never stored.
//
// A Cart is not safe for concurrent use. The zero value is an empty cart.
type Cart struct {
	restaurantId   int64
	restaurantName string
	lines          []Line
}

func New() *Cart {
	return &Cart{}
}

// Restaurant returns the current binding. ok is false for an empty cart.
func (c *Cart) Restaurant() (id int64, name string, ok bool) {
	if len(c.lines) == 0 {
		return 0, "", false
	}
	return c.restaurantId, c.restaurantName, true
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// ConflictsWith reports whether adding an item of the given restaurant
// requires discarding the current lines first.
func (c *Cart) ConflictsWith(restaurantId int64) bool {
	return len(c.lines) > 0 && c.restaurantId != restaurantId
}

// Add binds the cart to the given restaurant and merges the item in:
// an existing line with the same item id is incremented by quantity,
// otherwise a new line is appended.
//
// When the cart is bound to a different restaurant, Add returns
// ErrRestaurantConflict and leaves the cart unchanged.
func (c *Cart) Add(restaurantId int64, restaurantName string, item Line) error {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if c.ConflictsWith(restaurantId) {
		return fmt.Errorf(
			"%w: cart is bound to %s (id:%d)",
			ErrRestaurantConflict, c.restaurantName, c.restaurantId,
		)
	}

	c.restaurantId = restaurantId
	c.restaurantName = restaurantName

	for i := range c.lines {
		if c.lines[i].ItemId == item.ItemId {
			c.lines[i].Quantity += item.Quantity
			return nil
		}
	}
	c.lines = append(c.lines, item)
	return nil
}

// Remove decrements the quantity of the line with the given item id.
// A line reaching quantity 0 is deleted; deleting the last line drops the
// restaurant binding. Removing an unknown item id is a no-op, not an error.
func (c *Cart) Remove(itemId int64) {
	for i := range c.lines {
		if c.lines[i].ItemId != itemId {
			continue
		}
		c.lines[i].Quantity -= 1
		if c.lines[i].Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		break
	}
	if len(c.lines) == 0 {
		c.restaurantId = 0
		c.restaurantName = ""
	}
}

// Clear empties lines and the restaurant binding unconditionally.
// It is idempotent.
func (c *Cart) Clear() {
	c.restaurantId = 0
	c.restaurantName = ""
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	return append([]Line(nil), c.lines...)
}

// Total is the sum of unitPrice x quantity over lines.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, l := range c.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// OrderItems projects the cart into the items of an order placement request.
func (c *Cart) OrderItems() []orders.ItemSpec {
	items := make([]orders.ItemSpec, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, orders.ItemSpec{
			MenuItemId: l.ItemId,
			Quantity:   l.Quantity,
		})
	}
	return items
}

// Snapshot captures the cart as a versioned record.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		Version:        SnapshotVersion,
		RestaurantId:   c.restaurantId,
		RestaurantName: c.restaurantName,
		Lines:          append([]Line(nil), c.lines...),
	}
}

// Restore builds a Cart from a Snapshot, re-validating every invariant.
//
// Snapshots with an unknown version, non-positive quantities, duplicated item
// ids, or an inconsistent restaurant binding are rejected with
// ErrBrokenSnapshot.
func Restore(s Snapshot) (*Cart, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf(
			"%w: unsupported version %d", ErrBrokenSnapshot, s.Version,
		)
	}

	if len(s.Lines) == 0 {
		if s.RestaurantId != 0 || s.RestaurantName != "" {
			return nil, fmt.Errorf(
				"%w: restaurant binding without lines", ErrBrokenSnapshot,
			)
		}
		return New(), nil
	}

	if s.RestaurantId == 0 {
		return nil, fmt.Errorf("%w: lines without restaurant binding", ErrBrokenSnapshot)
	}

	seen := map[int64]bool{}
	for _, l := range s.Lines {
		if l.Quantity < 1 {
			return nil, fmt.Errorf(
				"%w: line %d has quantity %d", ErrBrokenSnapshot, l.ItemId, l.Quantity,
			)
		}
		if l.UnitPrice < 0 {
			return nil, fmt.Errorf(
				"%w: line %d has negative price", ErrBrokenSnapshot, l.ItemId,
			)
		}
		if seen[l.ItemId] {
			return nil, fmt.Errorf(
				"%w: duplicated line for item %d", ErrBrokenSnapshot, l.ItemId,
			)
		}
		seen[l.ItemId] = true
	}

	return &Cart{
		restaurantId:   s.RestaurantId,
		restaurantName: s.RestaurantName,
		lines:          append([]Line(nil), s.Lines...),
	}, nil
}
