package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *zap.Logger
}

// NewLogUseCaseObserver writes use-case events to logger. A nil logger
// yields a no-op observer.
func NewLogUseCaseObserver(logger *zap.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{logger: logger.Named("service")}
}

func (o *logUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	fields := make([]zap.Field, 0, 4+len(event.Fields))
	fields = append(fields,
		zap.String("use_case", event.Name),
		zap.Duration("duration", event.Duration),
		zap.Bool("success", event.Success),
	)
	for k, v := range event.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	if event.Err != nil {
		fields = append(fields, zap.Error(event.Err))
		o.logger.Error("service_use_case", fields...)
		return
	}
	o.logger.Info("service_use_case", fields...)
}

// MetricsUseCaseObserver counts use cases and records their latency.
type MetricsUseCaseObserver struct {
	total    *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsUseCaseObserver registers its collectors on reg.
func NewMetricsUseCaseObserver(reg prometheus.Registerer) (*MetricsUseCaseObserver, error) {
	o := &MetricsUseCaseObserver{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recruitdash",
			Name:      "use_cases_total",
			Help:      "Service use cases executed.",
		}, []string{"use_case"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "recruitdash",
			Name:      "use_case_failures_total",
			Help:      "Service use cases that returned an error.",
		}, []string{"use_case"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "recruitdash",
			Name:      "use_case_duration_seconds",
			Help:      "Service use case latency.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"use_case"}),
	}
	for _, c := range []prometheus.Collector{o.total, o.failures, o.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering use case metrics: %w", err)
		}
	}
	return o, nil
}

func (o *MetricsUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.total.WithLabelValues(event.Name).Inc()
	if !event.Success {
		o.failures.WithLabelValues(event.Name).Inc()
	}
	o.duration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

type multiUseCaseObserver []UseCaseObserver

// NewMultiUseCaseObserver fans events out to every non-nil observer.
func NewMultiUseCaseObserver(observers ...UseCaseObserver) UseCaseObserver {
	var out multiUseCaseObserver
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	switch len(out) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return out[0]
	}
	return out
}

func (m multiUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, o := range m {
		o.ObserveUseCase(ctx, event)
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	return NewMultiUseCaseObserver(observers...)
}

// observe reports a use case that started at startedAt and finished with err.
func observe(ctx context.Context, obs UseCaseObserver, name string, startedAt time.Time, err error, fields map[string]any) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
