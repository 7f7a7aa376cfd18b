package messaging

import (
	"context"
	"time"

	"github.com/jwalitptl/prescriptions-api/pkg/metrics"
)

// BrokerAdapter turns a Broker into a Publisher that wraps every payload in a
// Message envelope on a single channel
type BrokerAdapter struct {
	broker  Broker
	channel string
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewBrokerAdapter(broker Broker, channel string, m *metrics.Metrics) *BrokerAdapter {
	return &BrokerAdapter{
		broker:  broker,
		channel: channel,
		metrics: m,
		now:     time.Now,
	}
}

func (a *BrokerAdapter) Publish(ctx context.Context, eventType string, payload interface{}) error {
	err := a.broker.Publish(ctx, a.channel, Message{
		Type:       eventType,
		Payload:    payload,
		OccurredAt: a.now().UTC(),
	})

	if a.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		a.metrics.EventsPublished.WithLabelValues(eventType, status).Inc()
	}
	return err
}

func (a *BrokerAdapter) Close() error {
	return a.broker.Close()
}
