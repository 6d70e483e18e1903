package store

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zitadel/endsession/pkg/oidc"
	"github.com/zitadel/endsession/pkg/op"
)

const (
	operationWrite  = "write"
	operationRead   = "read"
	operationDelete = "delete"

	resultOK          = "ok"
	resultNotFound    = "not_found"
	resultUnavailable = "unavailable"
	resultError       = "error"
)

// InstrumentedStore records the count and duration
// of the operations of the wrapped store.
type InstrumentedStore struct {
	next       op.MessageStore
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// Instrument wraps s and registers its metrics with registerer.
// It fails if the metrics were already registered.
func Instrument(s op.MessageStore, registerer prometheus.Registerer) (*InstrumentedStore, error) {
	i := &InstrumentedStore{
		next: s,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logout_message_store_operations_total",
			Help: "Number of logout message store operations by result.",
		}, []string{"operation", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "logout_message_store_operation_duration_seconds",
			Help:    "Duration of logout message store operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	for _, c := range []prometheus.Collector{i.operations, i.duration} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return i, nil
}

func (i *InstrumentedStore) WriteMessage(ctx context.Context, msg *oidc.LogoutMessage) (key string, err error) {
	defer i.observe(operationWrite, time.Now(), &err)
	return i.next.WriteMessage(ctx, msg)
}

func (i *InstrumentedStore) ReadMessage(ctx context.Context, key string) (_ *oidc.LogoutMessage, err error) {
	defer i.observe(operationRead, time.Now(), &err)
	return i.next.ReadMessage(ctx, key)
}

func (i *InstrumentedStore) DeleteMessage(ctx context.Context, key string) (err error) {
	defer i.observe(operationDelete, time.Now(), &err)
	return i.next.DeleteMessage(ctx, key)
}

func (i *InstrumentedStore) observe(operation string, start time.Time, err *error) {
	i.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	i.operations.WithLabelValues(operation, result(*err)).Inc()
}

func result(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, op.ErrMessageNotFound):
		return resultNotFound
	case errors.Is(err, op.ErrStoreUnavailable):
		return resultUnavailable
	default:
		return resultError
	}
}
