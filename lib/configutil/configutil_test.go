package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "app.json5")
	require.NoError(t, os.WriteFile(name, []byte(`{host: "example.com", port: 80}`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.local.json5"), []byte(`{port: 8080}`), 0600))

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, "example.com", cfg.Host)
	require.Equal(t, 8080, cfg.Port)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.local.json5"), []byte(`{host: "local"}`), 0600))

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "app.json5"))
	require.NoError(t, err)
	require.Equal(t, "local", cfg.Host)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "app.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalName(t *testing.T) {
	require.Equal(t, filepath.Join("a", "b.local.json5"), localName(filepath.Join("a", "b.json5")))
	require.Equal(t, "telemetry.local.json5", localName("telemetry.json5"))
}
