// Package metrics exposes engine counters over Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CyclesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "advisor_cycles_total", Help: "Strategy cycles run, by terminal status"},
		[]string{"symbol", "status"},
	)
	OrdersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "advisor_orders_total", Help: "Orders accepted by the gateway"},
		[]string{"symbol", "side"},
	)
	RejectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "advisor_rejects_total", Help: "Orders rejected, by reason code"},
		[]string{"symbol", "reason"},
	)
)

func init() {
	prometheus.MustRegister(CyclesTotal, OrdersTotal, RejectsTotal)
}

// Serve starts a /metrics listener on addr in the background and returns
// the server so the caller can shut it down.
func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
