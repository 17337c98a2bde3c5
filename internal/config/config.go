package config

import (
	"time"
)

// DefaultMaxStorageSizeBytes bounds the local record collection when no
// explicit limit is configured. 100 MiB matches the product default for
// field-device local caches.
const DefaultMaxStorageSizeBytes int64 = 100 * 1024 * 1024

// AgentConfig is the top-level configuration container for the miner-sync
// agent. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type AgentConfig struct {
	// Agent holds settings for the agent itself: the local control API
	// address and the storage quota for offline records.
	Agent Agent `envPrefix:"AGENT_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds settings for the remote data API the agent syncs to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for the background workers (periodic
	// sync and connectivity probing).
	Workers Workers `envPrefix:"WORKERS_"`

	// App holds build metadata exposed on the version endpoint.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after env and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// Agent holds agent-level settings.
type Agent struct {
	// ListenAddress is the TCP address the local control API listens on,
	// in "host:port" format. The API is meant for loopback consumers
	// (the field UI shell) only.
	// Env: AGENT_ADDRESS
	ListenAddress string `env:"ADDRESS"`

	// MaxStorageSizeBytes bounds the aggregate size of locally held
	// records. Usage at or above 90% of this value raises the
	// storage-full flag. Defaults to [DefaultMaxStorageSizeBytes].
	// Env: AGENT_MAX_STORAGE_SIZE_BYTES
	MaxStorageSizeBytes int64 `env:"MAX_STORAGE_SIZE_BYTES"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite store.
type DB struct {
	// DSN is the SQLite database file path
	// (e.g. "/var/lib/miner-sync/offline.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings for the remote data API collaborator.
type Adapter struct {
	// BaseURL is the root URL of the remote data API
	// (e.g. "https://api.geovision.example").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// HashKey is the shared HMAC key used to sign upload batches.
	// Optional; when empty batches are sent unsigned.
	// Env: ADAPTER_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s"). Timeout semantics live here, not in the sync engine.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the periodic sync job re-attempts an
	// upload of pending records (e.g. "5m").
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ProbeInterval is how often the connectivity monitor probes the
	// remote health endpoint (e.g. "15s").
	// Env: WORKERS_PROBE_INTERVAL
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// App holds build metadata for the running agent.
type App struct {
	// Version is the semantic version string of the running agent.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// GetAgentConfig loads, merges, and validates the agent configuration from
// all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *AgentConfig or an error if any source fails to
// load or the final config fails validation.
func GetAgentConfig() (*AgentConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
