// Package config loads davnotes settings from a YAML file, a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Adapter names accepted by the platform factory.
const (
	AdapterWebDAV = "webdav"
	AdapterMemory = "memory"
)

// Config holds everything needed to reach the remote store.
type Config struct {
	Hostname string `yaml:"hostname"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// AppendUsername joins the username to the hostname, which is how
	// Nextcloud exposes per-user files (https://host/remote.php/dav/files/<user>).
	AppendUsername bool `yaml:"append_username"`

	Adapter  string        `yaml:"adapter"`
	Timeout  time.Duration `yaml:"timeout"`
	LogLevel string        `yaml:"log_level"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		AppendUsername: true,
		Adapter:        AdapterWebDAV,
		Timeout:        30 * time.Second,
		LogLevel:       "info",
	}
}

// Sources lists where Load looks for settings. Later sources win.
type Sources struct {
	File      string                          // optional YAML file
	DotEnv    string                          // optional .env file; missing is fine
	LookupEnv func(key string) (string, bool) // defaults to os.LookupEnv
}

// Load merges the YAML file, the .env file and the environment on top of Default.
func Load(src Sources) (Config, error) {
	cfg := Default()

	if src.File != "" {
		data, err := os.ReadFile(src.File)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", src.File, err)
		}
	}

	dotenv := map[string]string{}
	if src.DotEnv != "" {
		if _, err := os.Stat(src.DotEnv); err == nil {
			values, err := godotenv.Read(src.DotEnv)
			if err != nil {
				return cfg, fmt.Errorf("failed to parse %s: %w", src.DotEnv, err)
			}
			dotenv = values
		}
	}

	lookupEnv := src.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	lookup := func(keys ...string) (string, bool) {
		for _, k := range keys {
			if v, ok := lookupEnv(k); ok {
				return v, true
			}
		}
		for _, k := range keys {
			if v, ok := dotenv[k]; ok {
				return v, true
			}
		}
		return "", false
	}

	if v, ok := lookup("WEBDAV_HOSTNAME", "webdav_hostname"); ok {
		cfg.Hostname = v
	}
	if v, ok := lookup("WEBDAV_USERNAME", "webdav_username"); ok {
		cfg.Username = v
	}
	if v, ok := lookup("WEBDAV_PASSWORD", "webdav_password"); ok {
		cfg.Password = v
	}
	if v, ok := lookup("WEBDAV_APPEND_USERNAME", "webdav_append_username"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid WEBDAV_APPEND_USERNAME %q: %w", v, err)
		}
		cfg.AppendUsername = b
	}
	if v, ok := lookup("WEBDAV_TIMEOUT", "webdav_timeout"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid WEBDAV_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}
	if v, ok := lookup("DAVNOTES_ADAPTER"); ok {
		cfg.Adapter = v
	}
	if v, ok := lookup("DAVNOTES_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	return cfg, nil
}

// Validate reports settings the selected adapter cannot work without.
func (c Config) Validate() error {
	switch c.Adapter {
	case AdapterMemory:
		return nil
	case AdapterWebDAV:
		var errs []error
		if c.Hostname == "" {
			errs = append(errs, errors.New("webdav hostname is required (WEBDAV_HOSTNAME)"))
		}
		if c.Username == "" {
			errs = append(errs, errors.New("webdav username is required (WEBDAV_USERNAME)"))
		}
		if c.Timeout < 0 {
			errs = append(errs, errors.New("timeout must not be negative"))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("unknown adapter: %s", c.Adapter)
	}
}

// BaseURL returns the WebDAV root the client talks to.
func (c Config) BaseURL() string {
	if !c.AppendUsername || c.Username == "" {
		return c.Hostname
	}
	if strings.HasSuffix(c.Hostname, "/") {
		return c.Hostname + c.Username
	}
	return c.Hostname + "/" + c.Username
}
