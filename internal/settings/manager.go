// Package settings owns the per-printer, per-size layout configuration
// cache and its on-disk store.
package settings

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"printlabel/internal/label"
)

// Key identifies one stored layout record.
type Key struct {
	Printer string
	Size    string
}

// String renders the storage key. Viper treats dots as path separators,
// so they are flattened out of printer names.
func (k Key) String() string {
	return strings.ReplaceAll(k.Printer, ".", "-") + "_" + k.Size
}

// Manager caches layout configurations and persists them as a
// human-readable YAML mapping of "{printer}_{size}" keys to full
// records. Save replaces whole records under the write lock; readers
// always observe a complete record, old or new.
type Manager struct {
	mu    sync.RWMutex
	v     *viper.Viper
	cache map[Key]label.LayoutConfig
	log   *slog.Logger
}

// NewManager opens the store at path, loading nothing eagerly. A
// missing file is not an error; records materialize from size-tier
// defaults on first access.
func NewManager(path string, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		log.Debug("no stored label settings", "path", path, "error", err)
	}
	return &Manager{
		v:     v,
		cache: make(map[Key]label.LayoutConfig),
		log:   log,
	}
}

// Get returns the layout configuration for a (printer, size) pair,
// creating it from size-tier defaults on first access.
func (m *Manager) Get(key Key) label.LayoutConfig {
	m.mu.RLock()
	cfg, ok := m.cache[key]
	m.mu.RUnlock()
	if ok {
		return cfg
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cfg, ok = m.cache[key]; ok {
		return cfg
	}
	cfg = m.load(key)
	m.cache[key] = cfg
	return cfg
}

// load reads one record from the store, falling back to defaults for
// that key alone when the record is missing or malformed.
func (m *Manager) load(key Key) label.LayoutConfig {
	cfg := label.DefaultConfig(key.Size)
	if !m.v.IsSet(key.String()) {
		return cfg
	}
	if err := m.v.UnmarshalKey(key.String(), &cfg); err != nil {
		m.log.Warn("malformed layout record, using defaults",
			"key", key.String(), "error", err)
		return label.DefaultConfig(key.Size)
	}
	return cfg
}

// Save stores a complete record for the key and writes the whole store
// back to disk.
func (m *Manager) Save(key Key, cfg label.LayoutConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var record map[string]any
	if err := mapstructure.Decode(cfg, &record); err != nil {
		return fmt.Errorf("encode layout record %s: %w", key, err)
	}
	m.v.Set(key.String(), record)
	if err := m.v.WriteConfig(); err != nil {
		return fmt.Errorf("write settings store: %w", err)
	}
	m.cache[key] = cfg
	return nil
}

// Reset restores the size-tier defaults for the key and persists them.
func (m *Manager) Reset(key Key) (label.LayoutConfig, error) {
	cfg := label.DefaultConfig(key.Size)
	if err := m.Save(key, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Printers lists printer names that have stored records.
func (m *Manager) Printers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, k := range m.v.AllKeys() {
		name := k
		if i := strings.Index(name, "."); i > 0 {
			name = name[:i]
		}
		if i := strings.LastIndex(name, "_"); i > 0 {
			name = name[:i]
		}
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
