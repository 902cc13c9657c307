package oracle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "https://ipfs.io", cfg.Gateway)
	require.Equal(t, "contract:pifp", cfg.ContractID)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oracle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gateway: https://gw.example\nnode_url: http://node.example\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://gw.example", cfg.Gateway)
	require.Equal(t, "http://node.example", cfg.NodeURL)

	t.Setenv("PIFP_NODE_URL", "http://override.example")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "http://override.example", cfg.NodeURL)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "https://ipfs.io", cfg.Gateway)
}
