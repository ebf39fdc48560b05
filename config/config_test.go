package config_test

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ghs/config"
)

func newViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GHSMST_RUN_WORKERS", "4")
	t.Setenv("GHSMST_RUN_SHUFFLE", "true")
	t.Setenv("GHSMST_OUTPUT_FORMAT", "dot")
	t.Setenv("GHSMST_OUTPUT_METRICS_ADDR", "127.0.0.1:9464")

	cfg, err := config.Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Run.Workers)
	assert.True(t, cfg.Run.Shuffle)
	assert.Equal(t, "dot", cfg.Output.Format)
	assert.Equal(t, "127.0.0.1:9464", cfg.Output.MetricsAddr)
}

func TestLoad_ConfigFile(t *testing.T) {
	v := newViper()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
run:
  max_rounds: 500
  seed: 9
log:
  level: debug
  format: json
`)))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), cfg.Run.MaxRounds)
	assert.Equal(t, int64(9), cfg.Run.Seed)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "edges", cfg.Output.Format)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	assert.Empty(t, cfg.Validate())

	cfg.Run.MaxRounds = 0
	cfg.Run.Workers = -1
	cfg.Log.Level = "chatty"
	cfg.Output.Format = "svg"
	errs := cfg.Validate()
	require.Len(t, errs, 4)
	assert.Equal(t, "run.max_rounds", errs[0].Field)
	assert.Equal(t, "output.format", errs[3].Field)

	msg := config.ValidationErrors(errs).Error()
	assert.Contains(t, msg, "4 validation errors")
	assert.Contains(t, msg, "log.level")
}

func TestLoad_Invalid(t *testing.T) {
	v := newViper()
	v.Set("log.format", "xml")

	_, err := config.Load(v)
	var verrs config.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 1)
}
