// Package config loads the listener settings and static routes served by
// the kotori command.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/catatsuy/kotori"
)

const (
	DefaultListen      = "127.0.0.1:8080"
	DefaultLogLevel    = "info"
	DefaultReadTimeout = 5 * time.Second
)

type Config struct {
	Listen      string   `toml:"listen"`
	LogLevel    string   `toml:"log_level"`
	ReadTimeout Duration `toml:"read_timeout"`
	Routes      []Route  `toml:"route"`
}

// Route is a statically answered route.
type Route struct {
	Method string            `toml:"method"`
	Path   string            `toml:"path"`
	Status int               `toml:"status"`
	Body   string            `toml:"body"`
	Header map[string]string `toml:"header"`
}

// Duration decodes TOML strings such as "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is given: the two
// demo routes GET /hello and POST /hello/world.
func Default() Config {
	return Config{
		Listen:      DefaultListen,
		LogLevel:    DefaultLogLevel,
		ReadTimeout: Duration{DefaultReadTimeout},
		Routes: []Route{
			{Method: http.MethodGet, Path: "/hello", Body: "hello\n"},
			{Method: http.MethodPost, Path: "/hello/world", Body: "hello, world\n"},
		},
	}
}

// Load reads the TOML file at path. An empty path yields Default. Keys the
// file sets that Config does not know are reported as an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg := Config{}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("config %s has unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.ReadTimeout.Duration == 0 {
		c.ReadTimeout.Duration = DefaultReadTimeout
	}
}

// Validate checks every route for a known method, a non-empty path and a
// usable status code. Duplicates are left to the route table.
func (c Config) Validate() error {
	var errs []error
	if c.ReadTimeout.Duration < 0 {
		errs = append(errs, fmt.Errorf("read_timeout must not be negative: %s", c.ReadTimeout))
	}
	for i, r := range c.Routes {
		if _, err := kotori.ParseMethod(r.Method); err != nil {
			errs = append(errs, fmt.Errorf("route[%d]: %w", i, err))
		}
		if r.Path == "" {
			errs = append(errs, fmt.Errorf("route[%d]: %w: empty path", i, kotori.ErrInvalidPath))
		}
		if r.Status != 0 && (r.Status < 100 || r.Status > 999) {
			errs = append(errs, fmt.Errorf("route[%d]: invalid status %d", i, r.Status))
		}
	}
	return errors.Join(errs...)
}

// Save writes c to path as TOML.
func (c Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	encoder.Indent = ""

	return encoder.Encode(c)
}
