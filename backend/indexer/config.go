package indexer

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config drives the indexer daemon. YAML on disk, overridable by environment
// for container deployments.
type Config struct {
	ListenAddress   string        `yaml:"listen_address"`
	DatabasePath    string        `yaml:"database_path"`
	NodeURL         string        `yaml:"node_url"`
	ContractID      string        `yaml:"contract_id"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	QuorumThreshold int           `yaml:"quorum_threshold"`
	Environment     string        `yaml:"environment"`
}

// DefaultConfig returns the local-development defaults.
func DefaultConfig() Config {
	return Config{
		ListenAddress:   ":8480",
		DatabasePath:    "pifp-indexer.db",
		NodeURL:         "http://127.0.0.1:1337",
		ContractID:      "contract:pifp",
		PollInterval:    5 * time.Second,
		QuorumThreshold: 2,
		Environment:     "dev",
	}
}

// LoadConfig reads the YAML file when present and applies env overrides.
// A missing file is fine; defaults plus environment carry a dev setup.
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
	applyEnvOverrides(&cfg)
	if cfg.QuorumThreshold < 1 {
		return cfg, fmt.Errorf("quorum_threshold must be at least 1")
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PIFP_INDEXER_LISTEN"); v != "" {
		cfg.ListenAddress = v
	}
	if v := os.Getenv("PIFP_INDEXER_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("PIFP_NODE_URL"); v != "" {
		cfg.NodeURL = v
	}
	if v := os.Getenv("PIFP_CONTRACT_ID"); v != "" {
		cfg.ContractID = v
	}
	if v := os.Getenv("PIFP_INDEXER_POLL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.PollInterval = d
		}
	}
	if v := os.Getenv("PIFP_QUORUM_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.QuorumThreshold = n
		}
	}
	if v := os.Getenv("PIFP_ENV"); v != "" {
		cfg.Environment = v
	}
}
