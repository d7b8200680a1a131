package models

import "time"

// Cart holds the items a user intends to order before checkout.
// One cart per user; contents are destroyed on placement or clear.
type Cart struct {
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem snapshots the menu item fields the cart views need,
// so rendering a cart never goes back to the catalog.
// At most one CartItem per menu item id.
type CartItem struct {
	MenuItemID    string    `json:"menu_item_id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	IsVeg         bool      `json:"is_veg"`
	Quantity      int       `json:"quantity"` // always >= 1; the line is removed below 1
	Customization string    `json:"customization,omitempty"`
	AddedAt       time.Time `json:"added_at"`
}

// Total is the sum of price x quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemQuantity returns the quantity of the given menu item, or 0 when absent.
func (c *Cart) ItemQuantity(menuItemID string) int {
	for _, item := range c.Items {
		if item.MenuItemID == menuItemID {
			return item.Quantity
		}
	}
	return 0
}
