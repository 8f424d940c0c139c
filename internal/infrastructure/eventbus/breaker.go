package eventbus

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/event"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/circuitbreaker"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

// BreakerSink 为远程Sink加熔断保护
// 下游持续失败时直接拒绝,避免每个写请求都等待网络超时
type BreakerSink struct {
	next Sink
	cb   *circuitbreaker.CircuitBreaker
}

// WithBreaker 用配置创建熔断器并包装sink,熔断器名为events-<sink>
func WithBreaker(next Sink, cfg config.BreakerConfig, log *zap.Logger) *BreakerSink {
	name := "events-" + next.Name()
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	cb := circuitbreaker.NewCircuitBreaker(name, circuitbreaker.Config{
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: circuitbreaker.ConsecutiveFailures(threshold),
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			log.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to),
			)
			metrics.SetGaugeVec(metrics.CircuitBreakerState, prometheus.Labels{"name": name}, float64(to))
		},
	})
	return &BreakerSink{next: next, cb: cb}
}

func (s *BreakerSink) Name() string { return s.next.Name() }

func (s *BreakerSink) Send(ctx context.Context, e event.Event) error {
	err := s.cb.Execute(func() error {
		return s.next.Send(ctx, e)
	})

	result := "success"
	switch {
	case circuitbreaker.IsRejection(err):
		result = "rejected"
	case err != nil:
		result = "failure"
	}
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, prometheus.Labels{"name": s.cb.Name(), "result": result})
	return err
}

// State 熔断器当前状态
func (s *BreakerSink) State() circuitbreaker.State {
	return s.cb.State()
}
