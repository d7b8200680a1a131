package kitchenControllers

import (
	"testing"
	"time"

	"github.com/Arnav-0606/Nsut-cater/models"
)

func TestMapOrderStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    models.OrderStatus
		wantErr bool
	}{
		{"placed", models.OrderStatusPlaced, false},
		{"PREPARING", models.OrderStatusPreparing, false},
		{"Ready", models.OrderStatusReady, false},
		{"delivered", models.OrderStatusDelivered, false},
		{"cancelled", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := mapOrderStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("mapOrderStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("mapOrderStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToQueueDerivedFields(t *testing.T) {
	placed := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	ready := placed.Add(8 * time.Minute)
	now := placed.Add(20 * time.Minute)

	orders := []models.Order{
		{ID: "stale", Status: models.OrderStatusPlaced, OrderTime: placed},
		{ID: "counter", Status: models.OrderStatusReady, OrderTime: placed, PickupTime: &ready},
	}

	entries := toQueue(orders, now)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	stale := entries[0]
	if stale.OrderAgeMins != 20 || !stale.Urgent {
		t.Errorf("stale entry = {age: %d, urgent: %v}, want {20, true}", stale.OrderAgeMins, stale.Urgent)
	}

	counter := entries[1]
	if counter.Urgent {
		t.Errorf("ready order flagged urgent")
	}
	if counter.WaitingMins != 12 {
		t.Errorf("WaitingMins = %d, want 12", counter.WaitingMins)
	}
}
