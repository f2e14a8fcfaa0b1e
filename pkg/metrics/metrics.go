package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route pattern and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders committed with all of their tickets.",
	})

	TicketsBooked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tickets_booked_total",
		Help: "Tickets committed, through orders or directly.",
	})

	SeatConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seat_conflicts_total",
		Help: "Ticket inserts rejected because the seat was already taken.",
	})
)

// Booking is the slice of metrics the booking services record.
type Booking interface {
	OrderCreated(tickets int)
	TicketBooked()
	SeatConflict()
}

type prometheusBooking struct{}

// NewBooking returns a Booking recorder backed by the process-wide collectors.
func NewBooking() Booking {
	return prometheusBooking{}
}

func (prometheusBooking) OrderCreated(tickets int) {
	OrdersCreated.Inc()
	TicketsBooked.Add(float64(tickets))
}

func (prometheusBooking) TicketBooked() {
	TicketsBooked.Inc()
}

func (prometheusBooking) SeatConflict() {
	SeatConflicts.Inc()
}
