// Package config loads and holds the daemon's runtime configuration: the
// input stream to ingest and the set of output sinks to fan parsed events
// into.
package config

import (
	"fmt"
	"os"
	"sync/atomic"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/creasty/defaults"
	"github.com/pelletier/go-toml/v2"
)

// DefaultLocation is where the configuration file is read from when the
// caller does not specify an explicit path.
const DefaultLocation = "config/akari.toml"

// AppName, Version, and Maintainer identify this daemon in the composed
// User-Agent string sent with every ingestion request.
const (
	AppName    = "akari"
	Version    = "0.1.0"
	Maintainer = "merethin"
)

// ErrConfigNotFound is returned by FromFile when the configuration file does
// not exist; callers should fall back to defaults rather than treat this as
// fatal.
var ErrConfigNotFound = errors.New("config: file not found")

// SinkFilter is the include/exclude category filter shared by every output
// channel.
type SinkFilter struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

// Allows reports whether category passes this filter: include empty or
// contains category, AND exclude does not contain category.
func (f SinkFilter) Allows(category string) bool {
	if len(f.Include) > 0 {
		found := false
		for _, c := range f.Include {
			if c == category {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, c := range f.Exclude {
		if c == category {
			return false
		}
	}
	return true
}

// ConsoleSink prints parsed events to standard output.
type ConsoleSink struct {
	Enabled bool `toml:"enabled" default:"true"`
	SinkFilter
}

// FileSink appends parsed events as JSON lines to a rotating log file.
type FileSink struct {
	Enabled   bool   `toml:"enabled"`
	Path      string `toml:"path" default:"logs/happenings.jsonl"`
	MaxFiles  int    `toml:"maxfiles" default:"5"`
	Threshold int64  `toml:"threshold" default:"104857600"` // bytes, 100MiB
	SinkFilter
}

// BrokerSink publishes parsed events to a topic exchange on a message broker.
type BrokerSink struct {
	Enabled      bool   `toml:"enabled"`
	ExchangeName string `toml:"exchange_name" default:"happenings"`
	SinkFilter
}

// RelationalSink writes parsed events to a relational table.
type RelationalSink struct {
	Enabled          bool   `toml:"enabled"`
	TableName        string `toml:"table_name" default:"parsed_events"`
	SystemTableName  string `toml:"system_table_name" default:"system_events"`
	SinkFilter
}

// DocumentSink indexes parsed events into a searchable JSON document store.
type DocumentSink struct {
	Enabled   bool     `toml:"enabled"`
	Addresses []string `toml:"addresses" default:"[\"http://localhost:9200\"]"`
	SinkFilter
}

// OutputConfiguration groups every configurable sink.
type OutputConfiguration struct {
	Console    ConsoleSink    `toml:"console"`
	File       FileSink       `toml:"file"`
	Broker     BrokerSink     `toml:"broker"`
	Relational RelationalSink `toml:"relational"`
	Document   DocumentSink   `toml:"document"`
}

// InputConfiguration describes the upstream SSE feed.
type InputConfiguration struct {
	URL     string `toml:"url" default:"https://www.nationstates.net/api/happenings"`
	Workers int    `toml:"workers" default:"4"`
}

// WatermarkConfiguration controls the best-effort Redis mirror of the
// reorder buffer's progress; it is additive telemetry, not part of the
// ordering algorithm, so it is never required for the pipeline to run.
type WatermarkConfiguration struct {
	Enabled bool `toml:"enabled"`
}

// Configuration is the full daemon configuration, loaded from TOML and
// overlaid with environment variables.
type Configuration struct {
	Input     InputConfiguration     `toml:"input"`
	Output    OutputConfiguration    `toml:"output"`
	Watermark WatermarkConfiguration `toml:"watermark"`

	// UserAgent is derived from NS_USER_AGENT at load time; it is not a TOML
	// option since it must come from the environment.
	UserAgent string `toml:"-"`
	// RedisURL, RabbitMQURL, and DatabaseURL are populated from the
	// environment only when the corresponding sink is enabled.
	RedisURL    string `toml:"-"`
	RabbitMQURL string `toml:"-"`
	DatabaseURL string `toml:"-"`
}

var _config atomic.Pointer[Configuration]

// Get returns the currently active configuration. Panics if no configuration
// has been loaded yet.
func Get() *Configuration {
	c := _config.Load()
	if c == nil {
		panic("config: Get() called before configuration was loaded")
	}
	return c
}

// Update atomically swaps in a modified copy of the configuration.
func Update(fn func(c *Configuration)) {
	c := *Get()
	fn(&c)
	_config.Store(&c)
}

// Default builds a Configuration populated with only its struct-tag
// defaults.
func Default() (*Configuration, error) {
	c := &Configuration{}
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(err, "config: failed to apply defaults")
	}
	return c, nil
}

// FromFile reads and decodes the TOML configuration at path, starting from
// the struct-tag defaults so any options the file omits keep their default
// value. A missing file returns ErrConfigNotFound; the caller is expected to
// fall back to Default(). A malformed file is returned as an error for the
// caller to log before falling back to defaults.
func FromFile(path string) (*Configuration, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, ErrConfigNotFound
		}
		return c, errors.Wrap(err, "config: failed to read configuration file")
	}

	if err := toml.Unmarshal(b, c); err != nil {
		return c, errors.Wrap(err, "config: failed to parse configuration file")
	}

	return c, nil
}

// Load reads the configuration at path (falling back to defaults on a
// missing or malformed file, logging either case), applies the environment
// variable overlay, and installs the result as the active configuration.
func Load(path string) error {
	c, err := FromFile(path)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			log.WithField("path", path).Warn("no configuration file found, using defaults")
		} else {
			log.WithError(err).WithField("path", path).Warn("failed to parse configuration file, using defaults")
		}
	}

	if err := applyEnvironment(c); err != nil {
		return err
	}

	_config.Store(c)
	return nil
}

// applyEnvironment enforces the required-environment-variable rules:
// NS_USER_AGENT is always required; REDIS_URL/RABBITMQ_URL/DATABASE_URL are
// required only when the matching sink is enabled.
func applyEnvironment(c *Configuration) error {
	agent, ok := os.LookupEnv("NS_USER_AGENT")
	if !ok || agent == "" {
		return errors.New("config: NS_USER_AGENT environment variable is required")
	}
	c.UserAgent = fmt.Sprintf("%s/%s by %s, in use by %s", AppName, Version, Maintainer, agent)

	if c.Output.Relational.Enabled {
		url, ok := os.LookupEnv("DATABASE_URL")
		if !ok || url == "" {
			return errors.New("config: DATABASE_URL is required when the relational sink is enabled")
		}
		c.DatabaseURL = url
	}

	if c.Output.Broker.Enabled {
		url, ok := os.LookupEnv("RABBITMQ_URL")
		if !ok || url == "" {
			return errors.New("config: RABBITMQ_URL is required when the broker sink is enabled")
		}
		c.RabbitMQURL = url
	}

	if c.Watermark.Enabled {
		url, ok := os.LookupEnv("REDIS_URL")
		if !ok || url == "" {
			return errors.New("config: REDIS_URL is required when the watermark mirror is enabled")
		}
		c.RedisURL = url
	}

	return nil
}
