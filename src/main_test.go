package main

import (
	"BikeShare/src/config"
	"BikeShare/src/datasource/file"
	"BikeShare/src/storage"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tripsCSV = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-01-02 09:00:00,2017-01-02 09:01:00,60,A,B,Subscriber
`

func newTestLogger(t *testing.T) (*storage.Logger, string) {
	t.Helper()
	name := filepath.Join(t.TempDir(), "bikeshare.log")
	logger, err := storage.NewLogger(name)
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })
	return logger, name
}

func TestWatchDataInvalidatesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chicago.csv")
	require.NoError(t, os.WriteFile(path, []byte(tripsCSV), 0644))

	cfg := config.Default()
	cfg.DataDir = dir
	logger, logName := newTestLogger(t)

	cache := file.NewCache(cfg)
	_, cached, err := cache.Load("chicago")
	require.NoError(t, err)
	assert.False(t, cached)

	monitor, err := watchData(cfg, cache, logger)
	require.NoError(t, err)
	defer monitor.Close()

	require.NoError(t, os.WriteFile(path, []byte(tripsCSV+tripsCSV[strings.Index(tripsCSV, "\n")+1:]), 0644))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(logName)
		return err == nil && strings.Contains(string(data), "chicago 缓存失效")
	}, 5*time.Second, 20*time.Millisecond)

	ds, cached, err := cache.Load("chicago")
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, ds.Total)
}

func TestStartRotation(t *testing.T) {
	cfg := config.Default()
	cfg.RotateInterval = config.Duration(50 * time.Millisecond)
	cfg.LogMaxSize = "16"
	logger, logName := newTestLogger(t)

	c, err := startRotation(cfg, logger)
	require.NoError(t, err)
	defer c.Stop()

	logger.Info(strings.Repeat("x", 32))

	require.Eventually(t, func() bool {
		matches, _ := filepath.Glob(strings.TrimSuffix(logName, ".log") + ".*.log")
		return len(matches) > 0
	}, 5*time.Second, 20*time.Millisecond)
}
