package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for key, value := range values {
		v.Set(key, value)
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(nil))
	require.NoError(t, err)

	require.Equal(t, &Config{
		ProcPath: "/proc",
		LogLevel: logrus.InfoLevel,
		Bind:     "0.0.0.0",
		Port:     "8080",
	}, cfg)
	require.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PICOIRQ_PROC_PATH", "/host/proc/")
	t.Setenv("PICOIRQ_LOG_LEVEL", "debug")

	v := newViper(nil)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	cfg, err := Load(v)
	require.NoError(t, err)
	require.Equal(t, "/host/proc", cfg.ProcPath)
	require.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{name: "relative proc path", values: map[string]string{ProcPathKey: "proc"}},
		{name: "unknown log level", values: map[string]string{LogLevelKey: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(tt.values))
			require.Error(t, err)
		})
	}
}

func TestValidateListen(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
	}{
		{name: "bind hostname", values: map[string]string{BindKey: "localhost"}},
		{name: "port not a number", values: map[string]string{PortKey: "http"}},
		{name: "port out of range", values: map[string]string{PortKey: "70000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Listen settings do not concern commands that never serve.
			cfg, err := Load(newViper(tt.values))
			require.NoError(t, err)
			require.Error(t, cfg.ValidateListen())
		})
	}

	cfg, err := Load(newViper(nil))
	require.NoError(t, err)
	require.NoError(t, cfg.ValidateListen())
}

func TestAddressIPv6(t *testing.T) {
	cfg := &Config{ProcPath: "/proc", Bind: "::1", Port: "9100"}
	require.NoError(t, cfg.Validate())
	require.NoError(t, cfg.ValidateListen())
	require.Equal(t, "[::1]:9100", cfg.Address())
}
