// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Scheduler configuration and a thread-safe snapshot store with reload
// listeners.

package control

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/momentics/hioload-sched/api"
)

// Environment variables read once during initialization.
const (
	EnvServerPriority = "STAGING_RT_PRIORITY_SERVER"
	EnvBasePriority   = "STAGING_RT_PRIORITY_BASE"
	EnvDebug          = "HIOLOAD_SCHED_DEBUG"
)

// DefaultHistorySize is the number of outcomes kept by History.
const DefaultHistorySize = 64

// Config holds scheduler parameters, immutable once probing has run.
type Config struct {
	// ServerPriority asks for SCHED_FIFO on the initializing thread.
	ServerPriority api.PriorityOverride
	// BasePriority anchors realtime priorities of translated threads.
	BasePriority api.PriorityOverride
	// Debug enables diagnostic logging of every request.
	Debug bool
	// HistorySize bounds the outcome history; 0 disables it.
	HistorySize int
}

// DefaultConfig returns a Config with no overrides.
func DefaultConfig() *Config {
	return &Config{
		ServerPriority: api.PriorityOverride{Name: EnvServerPriority},
		BasePriority:   api.PriorityOverride{Name: EnvBasePriority},
		HistorySize:    DefaultHistorySize,
	}
}

// LoadEnv overlays environment variables on cfg. lookup defaults to
// os.LookupEnv. Values are kept raw; they are range-checked while probing.
func LoadEnv(cfg *Config, lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvServerPriority); ok {
		cfg.ServerPriority = api.PriorityOverride{Name: EnvServerPriority, Raw: v, Present: true}
	}
	if v, ok := lookup(EnvBasePriority); ok {
		cfg.BasePriority = api.PriorityOverride{Name: EnvBasePriority, Raw: v, Present: true}
	}
	if v, ok := lookup(EnvDebug); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}

// fileConfig is the TOML layout accepted by LoadFile.
type fileConfig struct {
	ServerPriority *int  `toml:"server_priority"`
	BasePriority   *int  `toml:"base_priority"`
	Debug          *bool `toml:"debug"`
	HistorySize    *int  `toml:"history_size"`
}

// LoadFile overlays the TOML file at path on cfg. Apply it before LoadEnv
// so the environment wins.
func LoadFile(path string, cfg *Config) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("control: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("control: %s: unknown keys %v", path, undecoded)
	}
	if fc.ServerPriority != nil {
		cfg.ServerPriority = api.PriorityOverride{
			Name:    "server_priority",
			Raw:     strconv.Itoa(*fc.ServerPriority),
			Present: true,
		}
	}
	if fc.BasePriority != nil {
		cfg.BasePriority = api.PriorityOverride{
			Name:    "base_priority",
			Raw:     strconv.Itoa(*fc.BasePriority),
			Present: true,
		}
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	if fc.HistorySize != nil {
		if *fc.HistorySize < 0 {
			return fmt.Errorf("control: %s: history_size must not be negative", path)
		}
		cfg.HistorySize = *fc.HistorySize
	}
	return nil
}

// Map flattens cfg for ConfigStore.
func (c *Config) Map() map[string]any {
	m := map[string]any{
		"debug":        c.Debug,
		"history_size": c.HistorySize,
	}
	if c.ServerPriority.Present {
		m["server_priority"] = c.ServerPriority.Raw
	}
	if c.BasePriority.Present {
		m["base_priority"] = c.BasePriority.Raw
	}
	return m
}

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config: make(map[string]any),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		out[k] = v
	}
	return out
}

// SetConfig merges new values and notifies listeners synchronously.
// The probed scheduling state is not affected by later changes.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	listeners := append([]func(){}, cs.listeners...)
	cs.mu.Unlock()
	for _, fn := range listeners {
		fn()
	}
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
