package models

import "time"

type OrderStatus string

const (
	// Order statuses (canteen pickup flow)
	OrderStatusPlaced    OrderStatus = "placed"    // Order placed, waiting for the kitchen
	OrderStatusPreparing OrderStatus = "preparing" // Kitchen started cooking
	OrderStatusReady     OrderStatus = "ready"     // Waiting at the pickup counter
	OrderStatusDelivered OrderStatus = "delivered" // Handed over to the customer
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// NextStatus returns the immediate successor in the pipeline and whether
// one exists. The pipeline is strictly linear: placed -> preparing ->
// ready -> delivered, no skipping and no going back.
func (s OrderStatus) NextStatus() (OrderStatus, bool) {
	switch s {
	case OrderStatusPlaced:
		return OrderStatusPreparing, true
	case OrderStatusPreparing:
		return OrderStatusReady, true
	case OrderStatusReady:
		return OrderStatusDelivered, true
	default:
		return "", false
	}
}

// Order is the immutable record of a placed order. TotalAmount and the
// line-item prices are frozen at placement time and never recomputed,
// even if catalog prices change later.
type Order struct {
	ID          string      `json:"id"`
	TokenNumber int         `json:"token_number"` // 100-999, unique among non-delivered orders
	UserID      string      `json:"user_id"`
	UserName    string      `json:"user_name"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	OrderTime   time.Time   `json:"order_time"`
	PickupTime  *time.Time  `json:"pickup_time,omitempty"` // set exactly once, on the transition into ready
	QRCode      string      `json:"qr_code"`
	MealType    MealType    `json:"meal_type"`
	Rating      int         `json:"rating,omitempty"` // 1-5, 0 while unrated
}

type OrderItem struct {
	MenuItemID     string  `json:"menu_item_id"`
	Name           string  `json:"name"`
	PriceAtTime    float64 `json:"price_at_time"`
	Quantity       int     `json:"quantity"`
	Customizations string  `json:"customizations,omitempty"`
}

// AgeMinutes is the whole minutes elapsed since the order was placed.
func (o *Order) AgeMinutes(now time.Time) int {
	return int(now.Sub(o.OrderTime).Minutes())
}

// IsUrgent reports whether a still-pending order has been waiting on the
// kitchen for more than ten minutes.
func (o *Order) IsUrgent(now time.Time) bool {
	return o.Status == OrderStatusPlaced && o.AgeMinutes(now) > 10
}

// WaitingMinutes is the whole minutes an order has sat at the pickup
// counter. Zero unless the order is ready.
func (o *Order) WaitingMinutes(now time.Time) int {
	if o.Status != OrderStatusReady || o.PickupTime == nil {
		return 0
	}
	return int(now.Sub(*o.PickupTime).Minutes())
}
