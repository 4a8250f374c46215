package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"matchscout/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version        int        `toml:"version"`
	Endpoint       string     `toml:"endpoint"`        // base URL of the matching service
	SearchPath     string     `toml:"search_path"`     // request path appended to the endpoint
	TimeoutSeconds int        `toml:"timeout_seconds"` // per-request timeout
	QuickQueries   []string   `toml:"quick_queries"`   // one-key example queries
	UISettings     UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SnippetLength  int  `toml:"snippet_length"` // max body snippet in error messages
	ShowProvenance bool `toml:"show_provenance"`
}

// Timeout returns the request timeout as a duration
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	matchscoutDir := filepath.Join(configDir, "matchscout")
	os.MkdirAll(matchscoutDir, 0755)

	return &configService{
		filePath: filepath.Join(matchscoutDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Endpoint:     cfg.Endpoint,
			QuickQueries: cfg.QuickQueries,
		})
	}
}

// applyDefaults fills in zero-valued fields after a partial config file
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Endpoint == "" {
		cfg.Endpoint = def.Endpoint
	}
	if cfg.SearchPath == "" {
		cfg.SearchPath = def.SearchPath
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = def.TimeoutSeconds
	}
	if cfg.UISettings.SnippetLength <= 0 {
		cfg.UISettings.SnippetLength = def.UISettings.SnippetLength
	}
	if cfg.QuickQueries == nil {
		cfg.QuickQueries = def.QuickQueries
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:        1,
		Endpoint:       "http://localhost:8000",
		SearchPath:     "/api/v1/search",
		TimeoutSeconds: 15,
		QuickQueries: []string{
			"Fintech co-founder with blockchain experience in London",
			"Who is the seed stage founder in Berlin working on e-commerce?",
			"Find a healthtech engineer who uses AI/ML for optimization",
		},
		UISettings: UISettings{
			SnippetLength:  100,
			ShowProvenance: true,
		},
	}
}
