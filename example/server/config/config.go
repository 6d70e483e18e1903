package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zitadel/endsession/pkg/op"
)

const (
	// default port for the http server to run
	DefaultPort = "9998"

	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Port string `yaml:"port"`

	// Origin pins the origin of the logout page.
	// If empty, it is taken from the (forwarded) request.
	Origin   string `yaml:"origin"`
	BasePath string `yaml:"base_path"`

	UserInteraction op.UserInteraction `yaml:"user_interaction"`
	Store           Store              `yaml:"store"`

	// CookieHashKey signs the session cookie and stored messages,
	// CookieBlockKey encrypts them. Random keys are used if empty.
	CookieHashKey  string `yaml:"cookie_hash_key"`
	CookieBlockKey string `yaml:"cookie_block_key"`

	Clients []Client `yaml:"clients"`
}

type Store struct {
	Kind       string `yaml:"kind"`
	MaxEntries int    `yaml:"max_entries"`
	Redis      struct {
		Addr   string `yaml:"addr"`
		DB     int    `yaml:"db"`
		Prefix string `yaml:"prefix"`
	} `yaml:"redis"`
}

type Client struct {
	ID                         string   `yaml:"id"`
	PostLogoutRedirectURIs     []string `yaml:"post_logout_redirect_uris"`
	PostLogoutRedirectURIGlobs []string `yaml:"post_logout_redirect_uri_globs"`
}

func Default() *Config {
	return &Config{
		Port:            DefaultPort,
		BasePath:        "/",
		UserInteraction: op.DefaultUserInteraction(),
		Store:           Store{Kind: StoreMemory},
		Clients: []Client{
			{
				ID:                     "web",
				PostLogoutRedirectURIs: []string{"http://localhost:9999/logged-out"},
			},
		},
	}
}

// Load reads the YAML file at path over the defaults,
// then applies environment variables (see [FromEnvVars]).
// An empty path only applies the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg, err := FromEnvVars(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// FromEnvVars loads configuration parameters from environment variables.
// If there is no such variable defined, then use default values.
func FromEnvVars(defaults *Config) (*Config, error) {
	if defaults == nil {
		defaults = &Config{}
	}
	cfg := *defaults
	if value, ok := os.LookupEnv("PORT"); ok {
		cfg.Port = value
	}
	if value, ok := os.LookupEnv("ORIGIN"); ok {
		cfg.Origin = value
	}
	if value, ok := os.LookupEnv("BASE_PATH"); ok {
		cfg.BasePath = value
	}
	if value, ok := os.LookupEnv("LOGOUT_URL"); ok {
		cfg.UserInteraction.LogoutURL = value
	}
	if value, ok := os.LookupEnv("LOGOUT_ID_PARAMETER"); ok {
		cfg.UserInteraction.LogoutIDParameter = value
	}
	if value, ok := os.LookupEnv("MESSAGE_LIFETIME"); ok {
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("MESSAGE_LIFETIME: %w", err)
		}
		cfg.UserInteraction.MessageLifetime = d
	}
	if value, ok := os.LookupEnv("STORE"); ok {
		cfg.Store.Kind = value
	}
	if value, ok := os.LookupEnv("STORE_MAX_ENTRIES"); ok {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("STORE_MAX_ENTRIES: %w", err)
		}
		cfg.Store.MaxEntries = n
	}
	if value, ok := os.LookupEnv("REDIS_ADDR"); ok {
		cfg.Store.Redis.Addr = value
	}
	if value, ok := os.LookupEnv("COOKIE_HASH_KEY"); ok {
		cfg.CookieHashKey = value
	}
	if value, ok := os.LookupEnv("COOKIE_BLOCK_KEY"); ok {
		cfg.CookieBlockKey = value
	}
	if value, ok := os.LookupEnv("POST_LOGOUT_REDIRECT_URI"); ok {
		cfg.Clients = []Client{{
			ID:                     "web",
			PostLogoutRedirectURIs: strings.Split(value, ","),
		}}
	}
	return &cfg, nil
}

var (
	ErrUnknownStore   = errors.New("unknown store kind")
	ErrInvalidKeySize = errors.New("invalid cookie key size")
)

func (c *Config) Validate() error {
	c.UserInteraction = c.UserInteraction.WithDefaults()
	if err := c.UserInteraction.Validate(); err != nil {
		return err
	}
	if c.CookieHashKey == "" && c.CookieBlockKey != "" {
		return fmt.Errorf("%w: cookie_block_key requires cookie_hash_key", ErrInvalidKeySize)
	}
	switch len(c.CookieBlockKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("%w: cookie_block_key must be 16, 24 or 32 bytes, got %d", ErrInvalidKeySize, len(c.CookieBlockKey))
	}
	switch c.Store.Kind {
	case StoreMemory:
	case StoreRedis:
		if c.Store.Redis.Addr == "" {
			return errors.New("redis store requires an address")
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownStore, c.Store.Kind)
	}
	return nil
}
