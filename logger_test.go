package daikinhttp

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ft := newFakeTransport(map[string]string{
		pathControlInfo:    currentControlState,
		pathSetControlInfo: "ret=OK",
	})

	client, err := NewClient("192.168.1.1", WithTransport(ft), WithLogger(NewZapAdapter(zap.New(core).Sugar())))
	require.NoError(t, err)
	require.NoError(t, client.SetControlInfo(context.Background(), ControlSettings{Power: Bool(false)}))

	entries := logs.FilterMessage("Setting device parameters").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Contains(t, entries[0].ContextMap(), "params")
}

func TestZapAdapterNil(t *testing.T) {
	logger := NewZapAdapter(nil)
	assert.NotPanics(t, func() {
		logger.Debug("debug")
		logger.Info("info", "k", "v")
		logger.Warn("warn")
		logger.Error("error")
	})
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ft := newFakeTransport(map[string]string{pathBasicInfo: "ret=KO"})
	client, err := NewClient("192.168.1.1", WithTransport(ft), WithLogger(logger))
	require.NoError(t, err)

	_, err = client.GetGeneralInfo(context.Background())
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Appliance returned an error response")
	assert.Contains(t, buf.String(), "path=common/basic_info")
}
