package greensim

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weather = "weather.csv"
	cfg.Lamp = "hps"
	cfg.SegmentDays = 30
	cfg.Mature = true

	path := filepath.Join(t.TempDir(), "greensim.yaml")
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigDefaults(t *testing.T) {
	// A partial file keeps the defaults for everything it omits.
	path := writeTestFile(t, "partial.yaml", "lamp: none\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "none", cfg.Lamp)
	assert.Equal(t, DefaultConfig().Days, cfg.Days)
	assert.Equal(t, DefaultConfig().OutputStep, cfg.OutputStep)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeTestFile(t, "bad.yaml", "lamp: [broken\n"))
	assert.Error(t, err)
}
