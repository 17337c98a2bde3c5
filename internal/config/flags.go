package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a local control API address in format [host]:[port]
//	-d local SQLite database path
//	-server-url remote data API base URL
//	-hash-key transport hash key for upload batches
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-max-storage-size max local storage size in bytes
//	-sync-interval periodic sync interval (e.g., "5m")
//	-probe-interval connectivity probe interval (e.g., "15s")
//	-c/-config json file path with configs
func ParseFlags() *AgentConfig {
	var listenAddress NetAddress
	var databaseDSN string
	var serverURL string
	var hashKey string
	var requestTimeout time.Duration
	var maxStorageSize int64
	var syncInterval time.Duration
	var probeInterval time.Duration
	var jsonConfigPath string

	flag.Var(&listenAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite database path")
	flag.StringVar(&serverURL, "server-url", "", "Remote data API base URL")
	flag.StringVar(&hashKey, "hash-key", "", "Transport hash key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Int64Var(&maxStorageSize, "max-storage-size", 0, "Max local storage size in bytes")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 5m)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 15s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &AgentConfig{
		Agent: Agent{
			ListenAddress:       listenAddress.String(),
			MaxStorageSizeBytes: maxStorageSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			BaseURL:        serverURL,
			HashKey:        hashKey,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval:  syncInterval,
			ProbeInterval: probeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
