package orders

import (
	"fmt"

	"github.com/feastworks/feast-api-types/internal/utils/cmp"
	"github.com/feastworks/feast-api-types/misc/rfctime"
)

// Status of an order.
//
// The server owns the lifecycle; clients only request transitions and
// re-fetch the authoritative state.
type Status string

const (
	Pending        Status = "PENDING"
	Confirmed      Status = "CONFIRMED"
	Preparing      Status = "PREPARING"
	OutForDelivery Status = "OUT_FOR_DELIVERY"
	Delivered      Status = "DELIVERED"
	Cancelled      Status = "CANCELLED"
)

// Statuses lists every order status, in lifecycle order
// (CANCELLED, the only off-path status, comes last).
func Statuses() []Status {
	return []Status{
		Pending, Confirmed, Preparing, OutForDelivery, Delivered, Cancelled,
	}
}

// SettableStatuses lists the statuses an order can be moved to by name:
// every status but CANCELLED, which has its own operation.
func SettableStatuses() []Status {
	settable := make([]Status, 0, 5)
	for _, s := range Statuses() {
		if s == Cancelled {
			continue
		}
		settable = append(settable, s)
	}
	return settable
}

// ParseStatus converts a string to Status.
//
// It returns an error for strings which are not a known status.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status: %s", s)
}

func (s Status) String() string {
	return string(s)
}

// Next returns the forward transition of the lifecycle
//
//	PENDING -> CONFIRMED -> PREPARING -> OUT_FOR_DELIVERY -> DELIVERED
//
// and false when there is no further transition (DELIVERED, CANCELLED).
func (s Status) Next() (Status, bool) {
	switch s {
	case Pending:
		return Confirmed, true
	case Confirmed:
		return Preparing, true
	case Preparing:
		return OutForDelivery, true
	case OutForDelivery:
		return Delivered, true
	default:
		return "", false
	}
}

// Terminal reports whether no further transition exists from s.
func (s Status) Terminal() bool {
	return s == Delivered || s == Cancelled
}

// CanCancel reports whether a customer may still cancel an order in s.
// Cancellation is customer-initiated only, and only from PENDING.
func (s Status) CanCancel() bool {
	return s == Pending
}

// ManualTransitions returns the statuses an administrator may move an order
// in s to: every status except s itself and except CANCELLED.
func (s Status) ManualTransitions() []Status {
	transitions := make([]Status, 0, 4)
	for _, candidate := range Statuses() {
		if candidate == s || candidate == Cancelled {
			continue
		}
		transitions = append(transitions, candidate)
	}
	return transitions
}

// Label is the human-readable form of s ("OUT_FOR_DELIVERY" -> "OUT FOR DELIVERY").
func (s Status) Label() string {
	label := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			label[i] = ' '
		} else {
			label[i] = s[i]
		}
	}
	return string(label)
}

// ItemSpec is one line of an order placement request.
type ItemSpec struct {
	MenuItemId int64 `json:"menuItemId"`
	Quantity   int   `json:"quantity"`
}

func (i ItemSpec) Equal(o ItemSpec) bool {
	return i == o
}

// CreateRequest is the body of POST /orders.
type CreateRequest struct {
	RestaurantId        int64      `json:"restaurantId"`
	Items               []ItemSpec `json:"items"`
	DeliveryAddress     string     `json:"deliveryAddress"`
	PaymentMethod       string     `json:"paymentMethod,omitempty"`
	SpecialInstructions string     `json:"specialInstructions,omitempty"`
}

func (c CreateRequest) Equal(o CreateRequest) bool {
	return c.RestaurantId == o.RestaurantId &&
		c.DeliveryAddress == o.DeliveryAddress &&
		c.PaymentMethod == o.PaymentMethod &&
		c.SpecialInstructions == o.SpecialInstructions &&
		cmp.SliceEqual(c.Items, o.Items)
}

// ItemDetail is one line of an order as the server reports it.
type ItemDetail struct {
	Id           int64   `json:"id"`
	MenuItemId   int64   `json:"menuItemId"`
	MenuItemName string  `json:"menuItemName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Subtotal     float64 `json:"subtotal"`
}

func (i ItemDetail) Equal(o ItemDetail) bool {
	return i == o
}

type Detail struct {
	Id                  int64                 `json:"id"`
	CustomerId          int64                 `json:"customerId"`
	CustomerName        string                `json:"customerName"`
	RestaurantId        int64                 `json:"restaurantId"`
	RestaurantName      string                `json:"restaurantName"`
	OrderItems          []ItemDetail          `json:"orderItems"`
	Status              Status                `json:"status"`
	DeliveryAddress     string                `json:"deliveryAddress"`
	Subtotal            float64               `json:"subtotal"`
	DeliveryFee         float64               `json:"deliveryFee"`
	TotalAmount         float64               `json:"totalAmount"`
	PaymentMethod       string                `json:"paymentMethod"`
	PaymentDone         bool                  `json:"paymentDone"`
	SpecialInstructions string                `json:"specialInstructions,omitempty"`
	CreatedAt           rfctime.LocalDateTime `json:"createdAt"`
	UpdatedAt           rfctime.LocalDateTime `json:"updatedAt"`
}

func (d Detail) Equal(o Detail) bool {
	return d.Id == o.Id &&
		d.CustomerId == o.CustomerId &&
		d.CustomerName == o.CustomerName &&
		d.RestaurantId == o.RestaurantId &&
		d.RestaurantName == o.RestaurantName &&
		d.Status == o.Status &&
		d.DeliveryAddress == o.DeliveryAddress &&
		d.Subtotal == o.Subtotal &&
		d.DeliveryFee == o.DeliveryFee &&
		d.TotalAmount == o.TotalAmount &&
		d.PaymentMethod == o.PaymentMethod &&
		d.PaymentDone == o.PaymentDone &&
		d.SpecialInstructions == o.SpecialInstructions &&
		d.CreatedAt.Equal(o.CreatedAt) &&
		d.UpdatedAt.Equal(o.UpdatedAt) &&
		cmp.SliceEqual(d.OrderItems, o.OrderItems)
}
