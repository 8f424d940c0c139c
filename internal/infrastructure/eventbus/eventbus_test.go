package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/bookshelf/internal/domain/event"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/pkg/circuitbreaker"
	"github.com/xiebiao/bookshelf/pkg/metrics"
)

func init() {
	metrics.InitMetrics()
}

type titleChanged struct {
	event.Base
	NewTitle string `json:"new_title"`
}

func newTitleChanged(id, title string) event.Event {
	return &titleChanged{Base: event.NewBase("BookTitleChanged", id), NewTitle: title}
}

// fakeSink 记录收到的事件,err非nil时返回错误
type fakeSink struct {
	name string
	err  error

	mu       sync.Mutex
	received []string
}

func (s *fakeSink) Name() string { return s.name }

func (s *fakeSink) Send(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, e.EventName()+":"+e.AggregateID())
	return s.err
}

type fakeRedis struct {
	channel string
	message interface{}
	err     error
}

func (f *fakeRedis) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	f.channel = channel
	f.message = message
	return redis.NewIntResult(1, f.err)
}

type fakeAMQP struct {
	routingKey string
	msgType    string
	payload    interface{}
}

func (f *fakeAMQP) Publish(_ context.Context, routingKey, msgType string, payload interface{}) error {
	f.routingKey, f.msgType, f.payload = routingKey, msgType, payload
	return nil
}

func TestLogSink(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := NewLogSink(zap.New(core))

	require.NoError(t, sink.Send(context.Background(), newTitleChanged("b-1", "Animal Farm")))

	entries := logs.FilterMessage("Domain event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "BookTitleChanged", fields["event"])
	assert.Equal(t, "b-1", fields["aggregate_id"])
}

func TestRedisSink(t *testing.T) {
	t.Run("发布JSON到频道", func(t *testing.T) {
		client := &fakeRedis{}
		sink := NewRedisSink(client, "bookshelf.events")

		require.NoError(t, sink.Send(context.Background(), newTitleChanged("b-1", "Animal Farm")))
		assert.Equal(t, "bookshelf.events", client.channel)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(client.message.([]byte), &decoded))
		assert.Equal(t, "BookTitleChanged", decoded["event"])
		assert.Equal(t, "b-1", decoded["aggregate_id"])
		assert.Equal(t, "Animal Farm", decoded["new_title"])
	})

	t.Run("Redis错误透传", func(t *testing.T) {
		sink := NewRedisSink(&fakeRedis{err: errors.New("connection reset")}, "c")
		assert.Error(t, sink.Send(context.Background(), newTitleChanged("b-1", "x")))
	})
}

func TestAMQPSink(t *testing.T) {
	pub := &fakeAMQP{}
	sink := NewAMQPSink(pub)

	e := newTitleChanged("b-2", "Emma")
	require.NoError(t, sink.Send(context.Background(), e))
	assert.Equal(t, "BookTitleChanged", pub.routingKey)
	assert.Equal(t, "BookTitleChanged", pub.msgType)
	assert.Equal(t, e, pub.payload)
}

func TestBreakerSink(t *testing.T) {
	down := &fakeSink{name: "redis", err: errors.New("timeout")}
	sink := WithBreaker(down, config.BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 2,
	}, zap.NewNop())

	ctx := context.Background()
	assert.Error(t, sink.Send(ctx, newTitleChanged("b-1", "a")))
	assert.Error(t, sink.Send(ctx, newTitleChanged("b-1", "b")))
	assert.Equal(t, circuitbreaker.StateOpen, sink.State())

	// 熔断后不再调用下游
	err := sink.Send(ctx, newTitleChanged("b-1", "c"))
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Len(t, down.received, 2)
	assert.Equal(t, "redis", sink.Name())
}

func TestBus_Publish(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	good := &fakeSink{name: "log"}
	bad := &fakeSink{name: "amqp", err: errors.New("channel closed")}
	bus := NewBus(zap.New(core), bad, good)

	bus.Publish(context.Background(), []event.Event{
		newTitleChanged("b-1", "first"),
		newTitleChanged("b-2", "second"),
	})

	// 失败的Sink不影响其他Sink,事件顺序保持
	assert.Equal(t, []string{"BookTitleChanged:b-1", "BookTitleChanged:b-2"}, good.received)
	assert.Equal(t, []string{"BookTitleChanged:b-1", "BookTitleChanged:b-2"}, bad.received)
	assert.Equal(t, 2, logs.FilterMessage("Failed to publish domain event").Len())
	assert.Equal(t, []string{"amqp", "log"}, bus.Sinks())
}

func TestBus_PublishNothing(t *testing.T) {
	sink := &fakeSink{name: "log"}
	NewBus(zap.NewNop(), sink).Publish(context.Background(), nil)
	assert.Empty(t, sink.received)
}
