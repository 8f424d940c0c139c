package eventbus

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/event"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// Bus 按顺序把事件扇出到所有Sink
type Bus struct {
	sinks []Sink
	log   *zap.Logger
}

var _ event.Publisher = (*Bus)(nil)

func NewBus(log *zap.Logger, sinks ...Sink) *Bus {
	return &Bus{sinks: sinks, log: log}
}

// Sinks 返回投递目标名,用于启动日志
func (b *Bus) Sinks() []string {
	names := make([]string, len(b.sinks))
	for i, s := range b.sinks {
		names[i] = s.Name()
	}
	return names
}

// Publish 投递事件
// 事件顺序与产生顺序一致;单个Sink失败不影响其他Sink和后续事件
func (b *Bus) Publish(ctx context.Context, events []event.Event) {
	span := trace.SpanFromContext(ctx)

	for _, e := range events {
		span.AddEvent("domain_event", trace.WithAttributes(
			attribute.String("event.name", e.EventName()),
			attribute.String("event.aggregate_id", e.AggregateID()),
		))

		for _, s := range b.sinks {
			if err := s.Send(ctx, e); err != nil {
				b.log.Warn("Failed to publish domain event",
					zap.String("sink", s.Name()),
					zap.String("event", e.EventName()),
					zap.String("aggregate_id", e.AggregateID()),
					zap.Error(err),
				)
				metrics.IncCounterVec(metrics.DomainEventPublishFailuresTotal, prometheus.Labels{"sink": s.Name()})
				continue
			}
			metrics.IncCounterVec(metrics.DomainEventsPublishedTotal, prometheus.Labels{"event": e.EventName(), "sink": s.Name()})
		}
	}
}
