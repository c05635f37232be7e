package xlog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ipconv/pkg/observability/xlog"
)

// testCleanup 测试辅助函数，在测试结束时执行 cleanup
func testCleanup(t *testing.T, cleanup func() error) {
	t.Helper()
	t.Cleanup(func() {
		if err := cleanup(); err != nil {
			t.Errorf("cleanup error: %v", err)
		}
	})
}

// =============================================================================
// Logger 接口测试
// =============================================================================

func TestLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevel(xlog.LevelDebug).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	output := buf.String()
	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		assert.Contains(t, output, want)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetLevelString("warn").
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	ctx := context.Background()
	logger.Info(ctx, "hidden")
	logger.Warn(ctx, "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogger_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	child := logger.With(xlog.Component("session"))
	child.Info(context.Background(), "with attrs", xlog.Command("binary"), xlog.Err(errors.New("boom")))

	output := buf.String()
	assert.Contains(t, output, "component=session")
	assert.Contains(t, output, "command=binary")
	assert.Contains(t, output, "error=boom")

	// 空属性返回自身
	assert.Same(t, logger, logger.With())
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetFormat(" JSON ").
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.Info(context.Background(), "json message", xlog.Address("10.0.0.1"))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "json message", m["msg"])
	assert.Equal(t, "10.0.0.1", m[xlog.KeyAddress])
}

func TestLogger_OnError(t *testing.T) {
	var got error
	logger, cleanup, err := xlog.New().
		SetOutput(failingWriter{}).
		SetOnError(func(err error) { got = err }).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.Info(context.Background(), "lost")
	assert.Error(t, got)
}

func TestLogger_OnErrorInherited(t *testing.T) {
	var count int
	logger, cleanup, err := xlog.New().
		SetOutput(failingWriter{}).
		SetOnError(func(error) { count++ }).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.With(xlog.Component("session")).Warn(context.Background(), "lost")
	assert.Equal(t, 1, count)
}

func TestLogger_AddSource(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().
		SetOutput(&buf).
		SetAddSource(true).
		Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.With(xlog.Component("session")).Info(context.Background(), "where")
	// 源码位置指向调用方而非 xlog 内部
	assert.Contains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "xlog_test.go")
	assert.NotContains(t, buf.String(), "logger.go")

	buf.Reset()
	plain, cleanup2, err := xlog.New().SetOutput(&buf).Build()
	require.NoError(t, err)
	testCleanup(t, cleanup2)
	plain.Info(context.Background(), "where")
	assert.NotContains(t, buf.String(), "source=")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestErr_Nil(t *testing.T) {
	assert.Equal(t, slog.Attr{}, xlog.Err(nil))
}

func TestDiscard(t *testing.T) {
	logger := xlog.Discard()
	ctx := context.Background()
	// 不应 panic
	logger.Error(ctx, "ignored")
	logger.With(xlog.Component("x")).Info(ctx, "ignored")
}

// =============================================================================
// Builder 测试
// =============================================================================

func TestBuilder_InvalidConfig(t *testing.T) {
	_, _, err := xlog.New().SetLevelString("verbose").Build()
	assert.Error(t, err)

	_, _, err = xlog.New().SetFormat("xml").Build()
	assert.Error(t, err)

	_, _, err = xlog.New().SetRotation("").Build()
	assert.ErrorIs(t, err, xlog.ErrEmptyFilename)

	_, _, err = xlog.New().SetRotation(filepath.Join(t.TempDir(), "a.log"), xlog.WithMaxSize(0)).Build()
	assert.ErrorIs(t, err, xlog.ErrInvalidRotation)

	// first-error-wins
	_, _, err = xlog.New().SetLevelString("verbose").SetFormat("xml").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown level")
}

func TestBuilder_EmptyFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetFormat("").Build()
	require.NoError(t, err)
	testCleanup(t, cleanup)

	logger.Info(context.Background(), "plain")
	assert.True(t, strings.Contains(buf.String(), "msg=plain"))
}

func TestBuilder_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ipconv.log")
	logger, cleanup, err := xlog.New().
		SetRotation(path,
			xlog.WithMaxSize(1),
			xlog.WithMaxBackups(2),
			xlog.WithMaxAge(1),
			xlog.WithCompress(false),
		).
		Build()
	require.NoError(t, err)

	logger.Warn(context.Background(), "rotated message")
	require.NoError(t, cleanup())
	// cleanup 可重复调用
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rotated message")
}
