package storage

import (
	"BikeShare/src/config"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bikeshare.log")
	logger, err := NewLogger(path)
	require.NoError(t, err)
	logger.now = func() time.Time { return time.Date(2017, 6, 1, 8, 30, 0, 0, time.UTC) }
	t.Cleanup(func() { _ = logger.Close() })
	return logger, path
}

func TestLogWritesLevelAndMessage(t *testing.T) {
	logger, path := newTestLogger(t)

	logger.Info("加载完成")
	logger.Warning("时间解析失败 3 行")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[2017-06-01 08:30:00] INFO: 加载完成", lines[0])
	assert.Equal(t, "[2017-06-01 08:30:00] WARNING: 时间解析失败 3 行", lines[1])
}

func TestLogAfterCloseIsDropped(t *testing.T) {
	logger, path := newTestLogger(t)
	require.NoError(t, logger.Close())

	logger.Error("ignored")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestReopen(t *testing.T) {
	logger, path := newTestLogger(t)
	logger.Info("first")

	moved := path + ".old"
	require.NoError(t, os.Rename(path, moved))
	require.NoError(t, logger.Reopen(""))
	logger.Info("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "second")
	assert.NotContains(t, string(data), "first")
}

func TestCheckRotate(t *testing.T) {
	logger, path := newTestLogger(t)
	cfg := config.Default()
	cfg.LogMaxSize = "2 * 8"

	logger.Info("this line is longer than sixteen bytes")
	require.NoError(t, logger.CheckRotate(cfg))

	rotated := filepath.Join(filepath.Dir(path), "bikeshare.20170601083000.log")
	_, err := os.Stat(rotated)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestEval(t *testing.T) {
	n, err := eval("10 * 1024 * 1024")
	require.NoError(t, err)
	assert.Equal(t, int64(10*1024*1024), n)

	n, err = eval("")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = eval("ten * 2")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "FATAL", FATAL.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestCheckRotateKeepsLoggingWhenRenameFails(t *testing.T) {
	logger, path := newTestLogger(t)
	cfg := config.Default()
	cfg.LogMaxSize = "16"

	// 轮转目标被非空目录占用，重命名必然失败
	rotated := filepath.Join(filepath.Dir(path), "bikeshare.20170601083000.log")
	require.NoError(t, os.MkdirAll(filepath.Join(rotated, "busy"), 0755))

	logger.Info("this line is longer than sixteen bytes")
	assert.Error(t, logger.CheckRotate(cfg))

	logger.Info("after failed rotate")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "this line is longer than sixteen bytes")
	assert.Contains(t, string(data), "after failed rotate")

	// 目标腾出后下一次轮转正常进行
	require.NoError(t, os.RemoveAll(rotated))
	require.NoError(t, logger.CheckRotate(cfg))
	_, err = os.Stat(rotated)
	require.NoError(t, err)
}
