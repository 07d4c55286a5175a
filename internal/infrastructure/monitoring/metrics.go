package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StockLevel = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "farm_stock_level",
			Help: "Number of units currently stocked, per product type",
		},
		[]string{"product"},
	)

	ProductsStockedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farm_products_stocked_total",
			Help: "Total number of product units added to the inventory",
		},
		[]string{"product"},
	)

	ProductsSoldTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farm_products_sold_total",
			Help: "Total number of product units sold",
		},
		[]string{"product"},
	)
)

var (
	TransactionsClosedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "farm_transactions_closed_total",
			Help: "Total number of finalised transactions",
		},
	)

	TransactionsEmptyTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "farm_transactions_empty_total",
			Help: "Total number of transactions closed without purchases",
		},
	)

	EarningsCentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "farm_earnings_cents_total",
			Help: "Gross earnings across all recorded transactions, in cents",
		},
	)

	CustomersRegistered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "farm_customers_registered",
			Help: "Number of customers in the address book",
		},
	)
)

func RecordProductsStocked(product string, quantity int) {
	ProductsStockedTotal.WithLabelValues(product).Add(float64(quantity))
	StockLevel.WithLabelValues(product).Add(float64(quantity))
}

func RecordProductsRemoved(product string, quantity int) {
	StockLevel.WithLabelValues(product).Sub(float64(quantity))
}

func RecordProductsSold(product string, quantity int) {
	ProductsSoldTotal.WithLabelValues(product).Add(float64(quantity))
}

func RecordTransactionClosed(totalCents int) {
	TransactionsClosedTotal.Inc()
	EarningsCentsTotal.Add(float64(totalCents))
}

func RecordEmptyTransactionClosed() {
	TransactionsClosedTotal.Inc()
	TransactionsEmptyTotal.Inc()
}

func RecordCustomerRegistered() {
	CustomersRegistered.Inc()
}
