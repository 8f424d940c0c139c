package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 重复调用不应panic(重复注册)

	if HTTPRequestsTotal == nil || HTTPRequestDuration == nil || HTTPRequestsInProgress == nil {
		t.Fatal("HTTP指标未初始化")
	}
	if DomainEventsPublishedTotal == nil || DomainEventPublishFailuresTotal == nil || BusinessErrorsTotal == nil {
		t.Fatal("领域指标未初始化")
	}
}

// TestCounterVec 测试事件投递计数
func TestCounterVec(t *testing.T) {
	InitMetrics()

	labels := prometheus.Labels{"event": "BookCreated", "sink": "test"}
	before := getCounterVecValue(t, DomainEventsPublishedTotal, labels)

	IncCounterVec(DomainEventsPublishedTotal, labels)
	IncCounterVec(DomainEventsPublishedTotal, labels)
	IncCounterVec(DomainEventsPublishedTotal, prometheus.Labels{"event": "GenreAdded", "sink": "test"})

	if got := getCounterVecValue(t, DomainEventsPublishedTotal, labels); got != before+2 {
		t.Errorf("CounterVec值错误: expected=%f, got=%f", before+2, got)
	}
}

// TestGauge 测试处理中请求数
func TestGauge(t *testing.T) {
	InitMetrics()
	HTTPRequestsInProgress.Set(0)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)

	var m dto.Metric
	if err := HTTPRequestsInProgress.Write(&m); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	if m.Gauge.GetValue() != 1 {
		t.Errorf("Gauge值错误: expected=1, got=%f", m.Gauge.GetValue())
	}
}

// TestGaugeVec 测试熔断器状态
func TestGaugeVec(t *testing.T) {
	InitMetrics()

	SetGaugeVec(CircuitBreakerState, prometheus.Labels{"name": "events-redis"}, 0)
	SetGaugeVec(CircuitBreakerState, prometheus.Labels{"name": "events-amqp"}, 1)

	var m dto.Metric
	if err := CircuitBreakerState.With(prometheus.Labels{"name": "events-amqp"}).Write(&m); err != nil {
		t.Fatalf("读取GaugeVec值失败: %v", err)
	}
	if m.Gauge.GetValue() != 1 {
		t.Errorf("GaugeVec值错误: expected=1, got=%f", m.Gauge.GetValue())
	}
}

// TestHistogramVec 测试请求耗时
func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := prometheus.Labels{"method": "GET", "path": "/api/v1/books/:id"}
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.05)
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.1)

	var m dto.Metric
	if err := HTTPRequestDuration.With(labels).(prometheus.Histogram).Write(&m); err != nil {
		t.Fatalf("读取HistogramVec值失败: %v", err)
	}
	if m.Histogram.GetSampleCount() != 2 {
		t.Errorf("HistogramVec观测次数错误: expected=2, got=%d", m.Histogram.GetSampleCount())
	}
}

// TestNilSafe 未初始化的指标调用不应panic
func TestNilSafe(t *testing.T) {
	IncCounterVec(nil, prometheus.Labels{"code": "X"})
	IncGauge(nil)
	DecGauge(nil)
	SetGaugeVec(nil, nil, 1)
	ObserveHistogramVec(nil, nil, 1)
}

func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels prometheus.Labels) float64 {
	var metric dto.Metric
	if err := counterVec.With(labels).Write(&metric); err != nil {
		t.Fatalf("读取CounterVec值失败: %v", err)
	}
	return metric.Counter.GetValue()
}
