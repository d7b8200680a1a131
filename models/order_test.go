package models

import (
	"testing"
	"time"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		from OrderStatus
		next OrderStatus
		ok   bool
	}{
		{OrderStatusPlaced, OrderStatusPreparing, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusDelivered, true},
		{OrderStatusDelivered, "", false},
		{"bogus", "", false},
	}
	for _, tt := range tests {
		next, ok := tt.from.NextStatus()
		if next != tt.next || ok != tt.ok {
			t.Errorf("NextStatus(%q) = (%q, %v), want (%q, %v)", tt.from, next, ok, tt.next, tt.ok)
		}
	}
}

func TestOrderAgeMonotone(t *testing.T) {
	placed := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	order := Order{Status: OrderStatusPlaced, OrderTime: placed}

	prev := -1
	for _, elapsed := range []time.Duration{0, 30 * time.Second, 5 * time.Minute, 10 * time.Minute, time.Hour} {
		age := order.AgeMinutes(placed.Add(elapsed))
		if age < prev {
			t.Fatalf("age went backwards: %d after %d", age, prev)
		}
		prev = age
	}
	if got := order.AgeMinutes(placed.Add(12 * time.Minute)); got != 12 {
		t.Fatalf("AgeMinutes(+12m) = %d, want 12", got)
	}
}

func TestIsUrgent(t *testing.T) {
	placed := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		status  OrderStatus
		elapsed time.Duration
		want    bool
	}{
		{"fresh order", OrderStatusPlaced, 2 * time.Minute, false},
		{"exactly ten minutes", OrderStatusPlaced, 10 * time.Minute, false},
		{"stale order", OrderStatusPlaced, 11 * time.Minute, true},
		{"already cooking", OrderStatusPreparing, 30 * time.Minute, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := Order{Status: tt.status, OrderTime: placed}
			if got := order.IsUrgent(placed.Add(tt.elapsed)); got != tt.want {
				t.Errorf("IsUrgent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWaitingMinutes(t *testing.T) {
	ready := time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)
	order := Order{
		Status:     OrderStatusReady,
		OrderTime:  ready.Add(-20 * time.Minute),
		PickupTime: &ready,
	}
	if got := order.WaitingMinutes(ready.Add(12 * time.Minute)); got != 12 {
		t.Fatalf("WaitingMinutes = %d, want 12", got)
	}

	order.Status = OrderStatusDelivered
	if got := order.WaitingMinutes(ready.Add(12 * time.Minute)); got != 0 {
		t.Fatalf("WaitingMinutes after delivery = %d, want 0", got)
	}
}

func TestCartTotalAndQuantity(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{MenuItemID: "1", Price: 40, Quantity: 2},
		{MenuItemID: "2", Price: 25, Quantity: 1},
	}}
	if got := cart.Total(); got != 105 {
		t.Fatalf("Total = %v, want 105", got)
	}
	if got := cart.ItemQuantity("1"); got != 2 {
		t.Fatalf("ItemQuantity(1) = %d, want 2", got)
	}
	if got := cart.ItemQuantity("absent"); got != 0 {
		t.Fatalf("ItemQuantity(absent) = %d, want 0", got)
	}
}
