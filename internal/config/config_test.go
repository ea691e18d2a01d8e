package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"datamapper/internal/parse"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.Equal(t, parse.StandardLayout, cfg.DateTime.StandardLayout)
	assert.Contains(t, cfg.Bool.TrueValues, "yes")
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "datamapper.yaml", `
log_level: debug
date_time:
  location: UTC
  formats: ["2006-01-02"]
bool:
  true_values: [ja]
  false_values: [nee]
image:
  jpeg_quality: 90
`)

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, []string{"2006-01-02"}, cfg.DateTime.Formats)
	assert.Equal(t, 90, cfg.Image.JPEGQuality)
	assert.Equal(t, parse.StandardLayout, cfg.DateTime.StandardLayout)

	opts := cfg.ParseOptions()
	assert.Equal(t, time.UTC, opts.Location)
	assert.Equal(t, []string{"ja"}, opts.TrueValues)
	assert.Len(t, cfg.MapperOptions(logrus.New()), 4)
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "datamapper.yaml", "log_level: debug\nimage:\n  jpeg_quality: 90\n")
	envFile := writeFile(t, ".env", "DATAMAPPER_JPEG_QUALITY=40\nDATAMAPPER_TRUE_VALUES=si | oui\n")

	t.Setenv("DATAMAPPER_LOG_LEVEL", "warn")
	t.Cleanup(func() {
		_ = os.Unsetenv("DATAMAPPER_JPEG_QUALITY")
		_ = os.Unsetenv("DATAMAPPER_TRUE_VALUES")
	})

	cfg, err := Load(path, envFile)
	require.NoError(t, err)

	assert.Equal(t, logrus.WarnLevel, cfg.Level())
	assert.Equal(t, 40, cfg.Image.JPEGQuality)
	assert.Equal(t, []string{"si", "oui"}, cfg.Bool.TrueValues)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "log_level: [")
	_, err = Load(bad, "")
	assert.Error(t, err)

	invalid := writeFile(t, "invalid.yaml", "log_level: loud\n")
	_, err = Load(invalid, "")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"DATAMAPPER_LOCATION":     "Europe/Amsterdam",
		"DATAMAPPER_DATE_FORMATS": "02.01.2006|2006-01-02 15:04",
		"DATAMAPPER_FALSE_VALUES": "nope",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, cfg.applyEnv(lookup))

	assert.Equal(t, "Europe/Amsterdam", cfg.DateTime.Location)
	assert.Equal(t, []string{"02.01.2006", "2006-01-02 15:04"}, cfg.DateTime.Formats)
	assert.Equal(t, []string{"nope"}, cfg.Bool.FalseValues)

	env["DATAMAPPER_JPEG_QUALITY"] = "high"
	assert.ErrorIs(t, cfg.applyEnv(lookup), ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Image.JPEGQuality = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = Default()
	cfg.DateTime.Location = "Nowhere/Special"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
