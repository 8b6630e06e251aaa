// Package config resolves firewatch settings from flags, FIREWATCH_*
// environment variables, an optional YAML file and built-in defaults, in
// that order of precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dm/firewatch/internal/logger"
)

const (
	DefaultURL      = "http://localhost:5000"
	DefaultInterval = 2 * time.Second

	envPrefix = "FIREWATCH"
)

// Keys shared by flags, env vars and the config file.
const (
	keyURL         = "url"
	keyInterval    = "interval"
	keyTimeout     = "timeout"
	keyInsecure    = "insecure"
	keyHeadless    = "headless"
	keyOnce        = "once"
	keyMetricsAddr = "metrics-addr"
	keyLogLevel    = "log-level"
	keyLogFile     = "log-file"
	keyConfig      = "config"
	keyOutput      = "output"
)

// Output formats for --once.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// Config is the resolved runtime configuration.
type Config struct {
	// BaseURL is the server URL with any userinfo stripped.
	BaseURL  string
	Username string
	Password string

	Interval time.Duration
	Timeout  time.Duration // 0 derives the timeout from Interval
	Insecure bool

	Headless    bool
	Once        bool
	Output      string
	MetricsAddr string

	LogLevel string
	LogFile  string

	// ConfigFile is the file that was read, if any.
	ConfigFile string
}

// NewFlagSet returns a FlagSet with every firewatch flag registered.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Duration(keyInterval, DefaultInterval, "polling interval (e.g. 2s, 5s)")
	fs.Duration(keyTimeout, 0, "per-request timeout (0 = interval minus 500ms)")
	fs.Bool(keyInsecure, false, "skip TLS certificate verification")
	fs.Bool(keyHeadless, false, "log changes instead of drawing the dashboard")
	fs.Bool(keyOnce, false, "fetch once, print a summary and exit")
	fs.String(keyOutput, OutputTable, "summary format for --once: table or yaml")
	fs.String(keyMetricsAddr, "", "serve Prometheus metrics on this address (headless only)")
	fs.String(keyLogLevel, logger.InfoLevel, "log level: debug, info, warn, error")
	fs.String(keyLogFile, "", "log file for dashboard mode (default: discard)")
	fs.String(keyConfig, "", "path to a YAML config file")
	fs.BoolP("help", "h", false, "show help")
	return fs
}

// Load parses args into fs and resolves the configuration. The optional
// single positional argument is the server URL. pflag.ErrHelp is returned
// unwrapped when help was requested.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if help, _ := fs.GetBool("help"); help {
		return nil, pflag.ErrHelp
	}

	rest := fs.Args()
	if len(rest) > 1 {
		return nil, fmt.Errorf("unexpected argument %q", rest[1])
	}

	v := viper.New()
	v.SetDefault(keyURL, DefaultURL)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	cfgFile := v.GetString(keyConfig)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	if len(rest) == 1 {
		v.Set(keyURL, rest[0])
	}

	baseURL, username, password, err := ParseServerURL(v.GetString(keyURL))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BaseURL:     baseURL,
		Username:    username,
		Password:    password,
		Interval:    v.GetDuration(keyInterval),
		Timeout:     v.GetDuration(keyTimeout),
		Insecure:    v.GetBool(keyInsecure),
		Headless:    v.GetBool(keyHeadless),
		Once:        v.GetBool(keyOnce),
		Output:      strings.ToLower(v.GetString(keyOutput)),
		MetricsAddr: v.GetString(keyMetricsAddr),
		LogLevel:    strings.ToLower(v.GetString(keyLogLevel)),
		LogFile:     v.GetString(keyLogFile),
		ConfigFile:  cfgFile,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	var errs []error
	if c.Interval <= 0 {
		errs = append(errs, errors.New("interval must be positive"))
	}
	if c.Timeout < 0 {
		errs = append(errs, errors.New("timeout must not be negative"))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.Output != OutputTable && c.Output != OutputYAML {
		errs = append(errs, fmt.Errorf("unknown output format %q (must be table or yaml)", c.Output))
	}
	if c.Once && c.Headless {
		errs = append(errs, errors.New("--once and --headless are mutually exclusive"))
	}
	if _, _, _, err := ParseServerURL(c.BaseURL); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseServerURL parses a server URL and returns the base URL without
// credentials, plus the username and password from its userinfo. Only http
// and https URLs with a host are accepted.
func ParseServerURL(raw string) (baseURL, username, password string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return "", "", "", fmt.Errorf("unsupported scheme %q (must be http or https)", u.Scheme)
	}

	if u.Hostname() == "" {
		return "", "", "", fmt.Errorf("invalid URL %q: host is required", raw)
	}

	if u.User != nil {
		username = u.User.Username()
		password, _ = u.User.Password()
		u.User = nil
	}

	return u.String(), username, password, nil
}
