package payments

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	createOrderErrors prometheus.Counter
	orderInfoErrors   prometheus.Counter
	storeReadErrors   prometheus.Counter
	lostCorrelations  prometheus.Counter
}

func newMetrics() *metrics {
	return &metrics{
		createOrderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "market_payments_create_order_errors_total",
			Help: "Failed order registrations at the payment provider.",
		}),
		orderInfoErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "market_payments_order_info_errors_total",
			Help: "Failed order status queries at the payment provider.",
		}),
		storeReadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "market_payments_store_read_errors_total",
			Help: "Failed correlation store reads (not counting missing keys).",
		}),
		lostCorrelations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "market_payments_lost_correlations_total",
			Help: "Invoices whose provider order guid could not be persisted.",
		}),
	}
}

// Describe implements prometheus.Collector.
func (s *Service) Describe(ch chan<- *prometheus.Desc) {
	s.m.createOrderErrors.Describe(ch)
	s.m.orderInfoErrors.Describe(ch)
	s.m.storeReadErrors.Describe(ch)
	s.m.lostCorrelations.Describe(ch)
}

// Collect implements prometheus.Collector.
func (s *Service) Collect(ch chan<- prometheus.Metric) {
	s.m.createOrderErrors.Collect(ch)
	s.m.orderInfoErrors.Collect(ch)
	s.m.storeReadErrors.Collect(ch)
	s.m.lostCorrelations.Collect(ch)
}
