// Package eventbus 领域事件投递
//
// Bus实现event.Publisher,把每个事件依次交给配置的投递目标(Sink)。
// 事件在业务数据保存之后投递,任何Sink失败只记录日志和指标,不回滚也不重试
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xiebiao/bookshelf/internal/domain/event"
)

// Sink 单个投递目标
type Sink interface {
	Name() string
	Send(ctx context.Context, e event.Event) error
}

// LogSink 把事件写成一行结构化日志
type LogSink struct {
	log *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Send(_ context.Context, e event.Event) error {
	s.log.Info("Domain event",
		zap.String("event", e.EventName()),
		zap.String("aggregate_id", e.AggregateID()),
		zap.Time("occurred_at", e.OccurredAt()),
		zap.Any("payload", e),
	)
	return nil
}

// RedisPublisher go-redis中用到的子集,*redis.Client满足
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSink 通过PUBLISH把事件JSON发到频道
type RedisSink struct {
	client  RedisPublisher
	channel string
}

func NewRedisSink(client RedisPublisher, channel string) *RedisSink {
	return &RedisSink{client: client, channel: channel}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Send(ctx context.Context, e event.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("序列化事件%s失败: %w", e.EventName(), err)
	}
	if err := s.client.Publish(ctx, s.channel, body).Err(); err != nil {
		return fmt.Errorf("PUBLISH %s失败: %w", s.channel, err)
	}
	return nil
}

// AMQPPublisher pkg/mq.Publisher满足
type AMQPPublisher interface {
	Publish(ctx context.Context, routingKey, msgType string, payload interface{}) error
}

// AMQPSink 发布到RabbitMQ Exchange,routing_key与消息类型均为事件名
type AMQPSink struct {
	pub AMQPPublisher
}

func NewAMQPSink(pub AMQPPublisher) *AMQPSink {
	return &AMQPSink{pub: pub}
}

func (s *AMQPSink) Name() string { return "amqp" }

func (s *AMQPSink) Send(ctx context.Context, e event.Event) error {
	return s.pub.Publish(ctx, e.EventName(), e.EventName(), e)
}
