// Package telem exposes Prometheus counters for the canteen's order and
// wallet activity, served at /metrics.
package telem

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "canteen_orders_placed_total",
		Help: "Orders successfully placed.",
	})

	OrdersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "canteen_orders_rejected_total",
		Help: "Order placements rejected, by reason.",
	}, []string{"reason"})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "canteen_order_status_transitions_total",
		Help: "Kitchen status transitions, by target status.",
	}, []string{"status"})

	WalletRecharges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "canteen_wallet_recharges_total",
		Help: "Successful wallet recharges.",
	})

	WalletRechargedAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "canteen_wallet_recharged_amount_total",
		Help: "Total amount credited through recharges.",
	})
)

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
