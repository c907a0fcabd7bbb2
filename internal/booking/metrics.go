package booking

import (
	"go.opentelemetry.io/otel/metric"
)

type metrics struct {
	created   metric.Int64Counter
	conflicts metric.Int64Counter
	retries   metric.Int64Counter
	cancelled metric.Int64Counter
}

func newMetrics(meter metric.Meter) (*metrics, error) {
	created, err := meter.Int64Counter("bookings.created",
		metric.WithDescription("Number of committed bookings"))
	if err != nil {
		return nil, err
	}

	conflicts, err := meter.Int64Counter("bookings.conflicts",
		metric.WithDescription("Number of booking attempts rejected because seats were already taken"))
	if err != nil {
		return nil, err
	}

	retries, err := meter.Int64Counter("bookings.retries",
		metric.WithDescription("Number of booking transactions replayed after a write conflict"))
	if err != nil {
		return nil, err
	}

	cancelled, err := meter.Int64Counter("bookings.cancelled",
		metric.WithDescription("Number of cancelled bookings"))
	if err != nil {
		return nil, err
	}

	return &metrics{
		created:   created,
		conflicts: conflicts,
		retries:   retries,
		cancelled: cancelled,
	}, nil
}
