package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubikais/mirror/internal/logging"
)

func init() {
	_ = logging.Init("test")
}

func TestWriteProducesStampedAndCurrentFiles(t *testing.T) {
	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	w, err := NewWriter(dir, 24, clock)
	require.NoError(t, err)

	require.NoError(t, w.Write("weather", map[string]string{"metar": "x"}))

	stamped, err := os.ReadFile(filepath.Join(dir, "weather_20260830_090000.json"))
	require.NoError(t, err)
	current, err := os.ReadFile(filepath.Join(dir, "weather_current.json"))
	require.NoError(t, err)
	assert.Equal(t, stamped, current)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(current, &payload))
	assert.Equal(t, "x", payload["metar"])
}

func TestCurrentFileTracksNewestWrite(t *testing.T) {
	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	w, err := NewWriter(dir, 24, clock)
	require.NoError(t, err)

	require.NoError(t, w.Write("notam", map[string]int{"rev": 1}))
	clock.Advance(5 * time.Minute)
	require.NoError(t, w.Write("notam", map[string]int{"rev": 2}))

	current, err := os.ReadFile(filepath.Join(dir, "notam_current.json"))
	require.NoError(t, err)

	var payload map[string]int
	require.NoError(t, json.Unmarshal(current, &payload))
	assert.Equal(t, 2, payload["rev"])
}

func TestPruneKeepsNewestPerCategory(t *testing.T) {
	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))

	w, err := NewWriter(dir, 2, clock)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.NoError(t, w.Write("weather", map[string]int{"i": i}))
		require.NoError(t, w.Write("notam", map[string]int{"i": i}))
		clock.Advance(time.Minute)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var weatherStamped, notamStamped int
	for _, e := range entries {
		name := e.Name()
		switch {
		case name == "weather_current.json" || name == "notam_current.json":
		case name[:8] == "weather_":
			weatherStamped++
		case name[:6] == "notam_":
			notamStamped++
		}
	}
	assert.Equal(t, 2, weatherStamped, "retention caps each category independently")
	assert.Equal(t, 2, notamStamped)

	// The survivors are the newest ones.
	_, err = os.Stat(filepath.Join(dir, "weather_20260830_090300.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "weather_20260830_090000.json"))
	assert.True(t, os.IsNotExist(err))
}
