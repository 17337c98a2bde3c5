// Package config provides configuration loading, merging, and validation
// facilities for the miner-sync agent.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources fill fields still unset by earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetAgentConfig].
package config
