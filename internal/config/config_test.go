package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, filepath.Join("model", "perceptron.bin"), cfg.ModelPath())
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "c.yaml", "eta: 0.5\nepochs: 3\ngate: or\nseed: 9\nmodel_file: or.gob\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Eta)
	assert.Equal(t, 3, cfg.Epochs)
	assert.Equal(t, "or", cfg.Gate)
	assert.Equal(t, uint64(9), cfg.Seed)
	assert.Equal(t, "or.gob", cfg.ModelFile)
	// untouched keys keep their defaults
	assert.Equal(t, 2, cfg.Features)
	require.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load(writeFile(t, "c.toml", "eta = 0.01\nepochs = 100\nfeatures = 4\ndata = \"d.csv\"\ntest_frac = 0.3\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.Eta)
	assert.Equal(t, 100, cfg.Epochs)
	assert.Equal(t, 4, cfg.Features)
	assert.Equal(t, "d.csv", cfg.Data)
	assert.Equal(t, 0.3, cfg.TestFrac)
}

func TestLoadRepoConfigs(t *testing.T) {
	for _, p := range []string{"../../configs/and.yaml", "../../configs/separable.toml"} {
		cfg, err := Load(p)
		require.NoError(t, err, p)
		require.NoError(t, cfg.Validate(), p)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "c.ini", "eta=1"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "c.yaml", "eta: [1, 2\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative eta":  func(c *Config) { c.Eta = -0.1 },
		"negative ep":   func(c *Config) { c.Epochs = -1 },
		"unknown gate":  func(c *Config) { c.Gate = "xor" },
		"test_frac 1":   func(c *Config) { c.TestFrac = 1 },
		"no model file": func(c *Config) { c.ModelFile = "" },
		"bad port":      func(c *Config) { c.Port = "http" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())

	cfg := Default()
	cfg.Eta = 0
	assert.NoError(t, cfg.Validate())
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{Epochs: 50, Gate: "NAND", ModelFile: "nand.json"})
	assert.Equal(t, 50, cfg.Epochs)
	assert.Equal(t, "nand", cfg.Gate)
	assert.Equal(t, "nand.json", cfg.ModelFile)
	assert.Equal(t, 0.1, cfg.Eta)
	assert.Equal(t, "model", cfg.ModelDir)
}

func TestApplyOverridesExplicitZero(t *testing.T) {
	cfg := Default()
	cfg.Seed = 42
	cfg.ApplyOverrides(Overrides{Set: map[string]bool{"eta": true, "test_frac": true}})
	assert.Equal(t, 0.0, cfg.Eta)
	assert.Equal(t, 0.0, cfg.TestFrac)
	assert.Equal(t, 10, cfg.Epochs)
	assert.Equal(t, uint64(42), cfg.Seed)
	require.NoError(t, cfg.Validate())

	cfg.ApplyOverrides(Overrides{Eta: -0.5, Set: map[string]bool{"eta": true}})
	assert.Error(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MODEL_PATH", "/srv/models/or.gob")
	t.Setenv("PORT", "9090")
	t.Setenv("API_KEY", "secret")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "/srv/models", cfg.ModelDir)
	assert.Equal(t, "or.gob", cfg.ModelFile)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "secret", cfg.APIKey)
}
