package config

import (
	"strings"
	"time"
)

// applyDefaults fills zero-valued fields with safe fallbacks after merging.
// Only fields with a meaningful universal default are touched; anything
// deployment-specific (DSN, base URL) must come from an explicit source.
func (cfg *AgentConfig) applyDefaults() {
	if cfg.Agent.ListenAddress == "" {
		cfg.Agent.ListenAddress = "localhost:8790"
	}
	if cfg.Agent.MaxStorageSizeBytes <= 0 {
		cfg.Agent.MaxStorageSizeBytes = DefaultMaxStorageSizeBytes
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 30 * time.Second
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = 5 * time.Minute
	}
	if cfg.Workers.ProbeInterval <= 0 {
		cfg.Workers.ProbeInterval = 15 * time.Second
	}
}

// validate checks that the final merged [AgentConfig] satisfies all agent
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *AgentConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
