// Package config loads the CLI configuration from an optional YAML file with
// environment overrides.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/dimasma0305/linearcli/internal/linearcli/errors"
)

const (
	AppDir      = "000"
	ConfigFile  = "config.yaml"
	ServiceName = "linear-cli-tool"
	APIURL      = "https://api.linear.app/graphql"
)

// Environment variables read by Load.
const (
	EnvConfig     = "LINEAR_CLI_CONFIG"
	EnvService    = "LINEAR_CLI_SERVICE"
	EnvAPIURL     = "LINEAR_CLI_API_URL"
	EnvStateMatch = "LINEAR_CLI_STATE_MATCH"
	EnvGit        = "LINEAR_CLI_GIT"
	EnvTimeout    = "LINEAR_CLI_TIMEOUT"
)

// Config holds everything the commands need besides the stored secrets.
type Config struct {
	// ServiceName is the credential store namespace for api-key and default-team.
	ServiceName string        `yaml:"service_name"`
	APIURL      string        `yaml:"api_url"`
	Description string        `yaml:"description"`
	Estimate    int           `yaml:"estimate"`
	Priority    int           `yaml:"priority"`
	StateMatch  string        `yaml:"state_match"`
	GitBinary   string        `yaml:"git"`
	// Timeout bounds each API request. Zero means no limit.
	Timeout     time.Duration `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		ServiceName: ServiceName,
		APIURL:      APIURL,
		Description: "Generated from 000 cli",
		Estimate:    1,
		Priority:    2,
		StateMatch:  "Progress",
		GitBinary:   "git",
	}
}

// Path returns the config file location: $LINEAR_CLI_CONFIG, or
// <user config dir>/000/config.yaml.
func Path() (string, error) {
	if p, ok := os.LookupEnv(EnvConfig); ok && p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, AppDir, ConfigFile), nil
}

// Load reads the config file if it exists, then applies environment overrides.
func Load() (*Config, error) {
	conf := Default()

	path, err := Path()
	if err != nil {
		return nil, err
	}
	if err := parseYamlFromFile(path, conf); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	if err := applyEnv(conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func applyEnv(conf *Config) error {
	if v, ok := os.LookupEnv(EnvService); ok && v != "" {
		conf.ServiceName = v
	}
	if v, ok := os.LookupEnv(EnvAPIURL); ok && v != "" {
		conf.APIURL = v
	}
	if v, ok := os.LookupEnv(EnvStateMatch); ok {
		conf.StateMatch = v
	}
	if v, ok := os.LookupEnv(EnvGit); ok && v != "" {
		conf.GitBinary = v
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			if secs, convErr := strconv.Atoi(v); convErr == nil {
				d = time.Duration(secs) * time.Second
			} else {
				return fmt.Errorf("%s has invalid duration %q: %w", EnvTimeout, v, err)
			}
		}
		conf.Timeout = d
	}
	return nil
}

// Validate rejects configurations the commands cannot run with.
func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "service_name must not be empty")
	}
	if c.APIURL == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "api_url must not be empty")
	}
	if c.GitBinary == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "git must not be empty")
	}
	if c.Timeout < 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "timeout must not be negative")
	}
	return nil
}

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

func parseYamlFromFile(confPath string, data any) error {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer bufferPool.Put(buf)
	defer buf.Reset()

	//nolint:gosec // G304: Config path comes from the user's environment
	f, err := os.Open(confPath)
	if err != nil {
		return fmt.Errorf("file open error: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := buf.ReadFrom(f); err != nil {
		return fmt.Errorf("file read error: %w", err)
	}
	if err := yaml.UnmarshalStrict(buf.Bytes(), data); err != nil {
		return fmt.Errorf("error unmarshal yaml %s: %w", confPath, err)
	}
	return nil
}
