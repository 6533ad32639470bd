// Package config defines the analyzer configuration: fetch behavior,
// report format selection, batch concurrency, and the optional YAML
// configuration file with per-site overrides and custom scoring weights.
package config
