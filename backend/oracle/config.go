package oracle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the oracle CLI. YAML on disk, overridable by environment.
type Config struct {
	Gateway     string `yaml:"gateway"`
	NodeURL     string `yaml:"node_url"`
	ContractID  string `yaml:"contract_id"`
	Environment string `yaml:"environment"`
}

// DefaultConfig returns the local-development defaults.
func DefaultConfig() Config {
	return Config{
		Gateway:     "https://ipfs.io",
		NodeURL:     "http://127.0.0.1:1337",
		ContractID:  "contract:pifp",
		Environment: "dev",
	}
}

// LoadConfig reads the YAML file when present and applies env overrides.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	if v := os.Getenv("PIFP_IPFS_GATEWAY"); v != "" {
		cfg.Gateway = v
	}
	if v := os.Getenv("PIFP_NODE_URL"); v != "" {
		cfg.NodeURL = v
	}
	if v := os.Getenv("PIFP_CONTRACT_ID"); v != "" {
		cfg.ContractID = v
	}
	if v := os.Getenv("PIFP_ENV"); v != "" {
		cfg.Environment = v
	}
	return cfg, nil
}
