package event

import (
	"context"
	"sync"
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/shared"
)

// Event 领域事件
// 事件名等于事件类型名(如BookCreated),发布后不可修改
type Event interface {
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// Base 事件公共字段,由具体事件嵌入
type Base struct {
	Name      string    `json:"event"`
	Aggregate string    `json:"aggregate_id"`
	Time      time.Time `json:"occurred_at"`
}

// NewBase 创建事件公共字段
// 发生时间留空,发布时由Stamped按注入的时钟补齐
func NewBase(name, aggregateID string) Base {
	return Base{Name: name, Aggregate: aggregateID}
}

// NewBaseAt 创建带发生时间的事件公共字段
func NewBaseAt(name, aggregateID string, at time.Time) Base {
	return Base{Name: name, Aggregate: aggregateID, Time: at.UTC()}
}

func (b Base) EventName() string     { return b.Name }
func (b Base) AggregateID() string   { return b.Aggregate }
func (b Base) OccurredAt() time.Time { return b.Time }

func (b *Base) stamp(at time.Time) {
	if b.Time.IsZero() {
		b.Time = at.UTC()
	}
}

// stamper 嵌入*Base的指针事件
type stamper interface {
	stamp(at time.Time)
}

// Publisher 事件发布端口
// 发布失败由实现方记录日志,不影响已提交的业务操作
type Publisher interface {
	Publish(ctx context.Context, events []Event)
}

type stamped struct {
	next  Publisher
	clock shared.Clock
}

// Stamped 发布前为未设置时间的事件补齐发生时间
// 同一批事件使用同一时刻
func Stamped(next Publisher, clock shared.Clock) Publisher {
	return &stamped{next: next, clock: clock}
}

func (p *stamped) Publish(ctx context.Context, events []Event) {
	now := p.clock.Now()
	for _, e := range events {
		if s, ok := e.(stamper); ok {
			s.stamp(now)
		}
	}
	p.next.Publish(ctx, events)
}

// Recorder 记录发布过的事件,用于测试
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, events []Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, events...)
}

// Events 返回已发布事件的副本
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Reset 清空记录
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Names 按顺序返回已发布事件名
func (r *Recorder) Names() []string {
	events := r.Events()
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.EventName()
	}
	return names
}
