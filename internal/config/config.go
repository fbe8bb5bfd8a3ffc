package config

import (
	"net"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PICOIRQ_PROC_PATH.
const EnvPrefix = "PICOIRQ"

// EnvKeyReplacer maps flag-style keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer("-", "_")

// Viper keys, also used as flag names.
const (
	ProcPathKey = "proc-path"
	LogLevelKey = "log-level"
	BindKey     = "bind"
	PortKey     = "port"
)

// Defaults
const (
	DefaultProcPath = "/proc"
	DefaultLogLevel = "info"
	DefaultBind     = "0.0.0.0"
	DefaultPort     = "8080"
)

// Config holds the runtime settings of picoirq
type Config struct {
	// ProcPath is the procfs mount point, e.g. /host/proc inside a container.
	ProcPath string
	LogLevel logrus.Level
	Bind     string
	Port     string
}

// SetDefaults registers the default value of every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(ProcPathKey, DefaultProcPath)
	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(BindKey, DefaultBind)
	v.SetDefault(PortKey, DefaultPort)
}

// Load reads and validates the configuration from v
func Load(v *viper.Viper) (*Config, error) {
	level, err := logrus.ParseLevel(v.GetString(LogLevelKey))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", LogLevelKey)
	}

	cfg := &Config{
		ProcPath: filepath.Clean(v.GetString(ProcPathKey)),
		LogLevel: level,
		Bind:     v.GetString(BindKey),
		Port:     v.GetString(PortKey),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings shared by every command
func (c *Config) Validate() error {
	if !filepath.IsAbs(c.ProcPath) {
		return errors.Errorf("%s must be an absolute path, got %q", ProcPathKey, c.ProcPath)
	}
	return nil
}

// ValidateListen checks the API server address, only serve uses it
func (c *Config) ValidateListen() error {
	if c.Bind != "" && net.ParseIP(c.Bind) == nil {
		return errors.Errorf("%s must be an IP address, got %q", BindKey, c.Bind)
	}
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return errors.Errorf("%s must be a number between 1 and 65535, got %q", PortKey, c.Port)
	}
	return nil
}

// Address returns the listen address of the API server
func (c *Config) Address() string {
	return net.JoinHostPort(c.Bind, c.Port)
}
