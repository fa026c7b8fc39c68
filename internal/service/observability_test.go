package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogUseCaseObserver(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewLogUseCaseObserver(zap.New(core))
	ctx := context.Background()

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "load-dataset", Success: true, Duration: time.Millisecond, Fields: map[string]any{"rows": 8}})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "refresh-dataset", Err: errors.New("offline")})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "load-dataset", entries[0].ContextMap()["use_case"])
	assert.EqualValues(t, 8, entries[0].ContextMap()["rows"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "offline", entries[1].ContextMap()["error"])
}

func TestLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestMetricsUseCaseObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := NewMetricsUseCaseObserver(reg)
	require.NoError(t, err)
	ctx := context.Background()

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "navigate", Success: true})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "navigate", Success: true})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "load-dataset", Success: false})

	assert.Equal(t, 2.0, promtest.ToFloat64(obs.total.WithLabelValues("navigate")))
	assert.Equal(t, 1.0, promtest.ToFloat64(obs.failures.WithLabelValues("load-dataset")))
	assert.Equal(t, 0.0, promtest.ToFloat64(obs.failures.WithLabelValues("navigate")))

	_, err = NewMetricsUseCaseObserver(reg)
	assert.Error(t, err, "collectors register once per registry")
}

func TestMultiUseCaseObserver(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}

	assert.IsType(t, NoopUseCaseObserver{}, NewMultiUseCaseObserver())
	assert.Same(t, a, NewMultiUseCaseObserver(nil, a))

	NewMultiUseCaseObserver(a, nil, b).ObserveUseCase(context.Background(), UseCaseEvent{Name: "x"})
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}

func TestNewFileLogger(t *testing.T) {
	nop, err := NewFileLogger("", zapcore.InfoLevel)
	require.NoError(t, err)
	assert.NotNil(t, nop)

	path := filepath.Join(t.TempDir(), "logs", "recruitdash.log")
	logger, err := NewFileLogger(path, zapcore.DebugLevel)
	require.NoError(t, err)
	logger.Debug("hello", zap.String("k", "v"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
