package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/mcp-training/minesweeper/game/engine"
	"github.com/wricardo/mcp-training/minesweeper/game/service"
)

var (
	ErrConfigNotFound = service.ErrConfigNotFound
	ErrInvalidConfig  = fmt.Errorf("%w: invalid configuration", service.ErrInvalidInput)
)

// DefaultConfigName is the preset used when no configuration is requested
const DefaultConfigName = "easy"

// Manager handles board preset loading and caching
type Manager struct {
	configDir     string
	defaultConfig *engine.GameConfig
	configs       map[string]*engine.GameConfig
	mu            sync.RWMutex
}

// NewManager creates a new configuration manager
func NewManager(configDir string) (*Manager, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("config directory does not exist: %s", configDir)
	}

	m := &Manager{
		configDir: configDir,
		configs:   make(map[string]*engine.GameConfig),
	}

	m.loadDefaultConfig()
	return m, nil
}

// LoadConfig loads a configuration by name, falling back to the built-in
// presets when no file with that name exists
func (m *Manager) LoadConfig(name string) (*engine.GameConfig, error) {
	key := configKey(name)
	if !validName(key) {
		return nil, ErrConfigNotFound
	}

	m.mu.RLock()
	if config, exists := m.configs[key]; exists {
		m.mu.RUnlock()
		return config, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if config, exists := m.configs[key]; exists {
		return config, nil
	}

	config, err := m.readConfigFile(key)
	if errors.Is(err, ErrConfigNotFound) {
		preset, ok := engine.PresetByName(key)
		if !ok {
			return nil, err
		}
		config = preset
	} else if err != nil {
		return nil, err
	}

	m.configs[key] = config
	return config, nil
}

func (m *Manager) readConfigFile(key string) (*engine.GameConfig, error) {
	data, err := os.ReadFile(filepath.Join(m.configDir, key+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// ListConfigs returns information about every loadable configuration:
// the JSON files in the config directory plus any built-in preset they do not shadow
func (m *Manager) ListConfigs() ([]*service.ConfigInfo, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var configs []*service.ConfigInfo
	seen := make(map[string]bool)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		id := configKey(entry.Name())
		seen[id] = true

		config, err := m.LoadConfig(id)
		if err != nil {
			// Skip invalid configs
			continue
		}

		configs = append(configs, configInfo(entry.Name(), id, config))
	}

	for _, preset := range engine.Presets() {
		if seen[preset.Name] {
			continue
		}
		configs = append(configs, configInfo("", preset.Name, preset))
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].ConfigID < configs[j].ConfigID
	})
	return configs, nil
}

func configInfo(filename, id string, config *engine.GameConfig) *service.ConfigInfo {
	return &service.ConfigInfo{
		Filename:    filename,
		ConfigID:    id,
		Name:        config.Name,
		Description: config.Description,
		Height:      config.Height,
		Width:       config.Width,
		Mines:       config.Mines,
		FixedLayout: len(config.Layout) > 0,
	}
}

// GetDefault returns the default configuration
func (m *Manager) GetDefault() *engine.GameConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultConfig
}

// SetDefault sets the default configuration by name
func (m *Manager) SetDefault(name string) error {
	config, err := m.LoadConfig(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultConfig = config
	return nil
}

// RefreshCache drops every cached configuration and reloads the default
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	m.configs = make(map[string]*engine.GameConfig)
	m.mu.Unlock()

	m.loadDefaultConfig()
}

// loadDefaultConfig picks easy (its file, else the built-in preset). When easy.json
// exists but is invalid, the first valid file wins.
func (m *Manager) loadDefaultConfig() {
	config, err := m.LoadConfig(DefaultConfigName)
	if err != nil {
		config = m.firstFileConfig()
	}
	if config == nil {
		config, _ = engine.PresetByName(DefaultConfigName)
	}

	m.mu.Lock()
	m.defaultConfig = config
	m.mu.Unlock()
}

func (m *Manager) firstFileConfig() *engine.GameConfig {
	configs, err := m.ListConfigs()
	if err != nil {
		return nil
	}
	for _, info := range configs {
		if info.Filename == "" {
			continue
		}
		if config, err := m.LoadConfig(info.ConfigID); err == nil {
			return config
		}
	}
	return nil
}

// SaveConfig validates a configuration and writes it to disk
func (m *Manager) SaveConfig(name string, config *engine.GameConfig) error {
	key := configKey(name)
	if !validName(key) {
		return fmt.Errorf("%w: invalid config name %q", ErrInvalidConfig, name)
	}

	if err := engine.ValidateGameConfig(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	configPath := filepath.Join(m.configDir, key+".json")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	m.mu.Lock()
	m.configs[key] = config
	m.mu.Unlock()

	return nil
}

// configKey normalizes a config name or filename into its cache key
func configKey(name string) string {
	return strings.TrimSuffix(strings.TrimSpace(name), ".json")
}

// validName rejects names that would escape the config directory
func validName(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, `/\`)
}
