package profile

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.Dir = t.TempDir()
	cfg.Duration = 20 * time.Millisecond
	cfg.Cooldown = time.Hour
	return cfg
}

func TestCaptureWritesFiles(t *testing.T) {
	p, err := New(testConfig(t), nil)
	require.NoError(t, err)

	base, err := p.Capture("test")
	require.NoError(t, err)

	_, err = p.Capture("again")
	assert.ErrorIs(t, err, ErrBusy)

	p.Wait()
	assert.False(t, p.Busy())
	for _, suffix := range []string{".cpu.prof", ".trace"} {
		info, err := os.Stat(base + suffix)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	_, err = p.Capture("cooldown")
	assert.ErrorIs(t, err, ErrCooldown)
}

func TestCooldownExpires(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cooldown = time.Minute
	p, err := New(cfg, nil)
	require.NoError(t, err)

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	_, err = p.Capture("first")
	require.NoError(t, err)
	p.Wait()

	now = now.Add(2 * time.Minute)
	_, err = p.Capture("second")
	require.NoError(t, err)
	p.Wait()
}

func TestMonitorHonoursWarmupAndThreshold(t *testing.T) {
	p, err := New(testConfig(t), nil)
	require.NoError(t, err)

	start := time.Now()
	m := NewMonitor(p, start)

	assert.False(t, m.Observe(10, start.Add(time.Second), "warmup"))
	assert.False(t, m.Observe(60, start.Add(time.Minute), "fast"))
	assert.True(t, m.Observe(10, start.Add(time.Minute), "slow"))
	p.Wait()
	assert.False(t, m.Observe(10, start.Add(2*time.Minute), "cooldown"))
}
