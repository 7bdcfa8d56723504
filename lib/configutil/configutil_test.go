package configutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	State   string `json:"state"`
	BaseUrl string `json:"base_url"`
	Timeout int    `json:"timeout_seconds"`
}

func writeFile(t testing.TB, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0600)
	if err != nil {
		t.Fatal(err)
	}
}

func TestLocalPath(t *testing.T) {
	require.Equal(t, "config.local.json5", LocalPath("config.json5"))
	require.Equal(t, "a/b/telemetry.local.json5", LocalPath("a/b/telemetry.json5"))
	require.Equal(t, "noext.local", LocalPath("noext"))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")

	_, err := ReadConfig[testConfig](path)
	require.True(t, errors.Is(err, ErrNotFound))

	writeFile(t, path, `{
		// comments and trailing commas are fine in json5
		state: "MS",
		base_url: "https://corp.sos.ms.gov",
		timeout_seconds: 30,
	}`)
	cfg, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, testConfig{State: "MS", BaseUrl: "https://corp.sos.ms.gov", Timeout: 30}, cfg)

	writeFile(t, filepath.Join(dir, "config.local.json5"), `{ base_url: "http://localhost:8080" }`)
	cfg, err = ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "MS", cfg.State)
	require.Equal(t, "http://localhost:8080", cfg.BaseUrl)
	require.Equal(t, 30, cfg.Timeout)

	writeFile(t, path, `{ state: `)
	_, err = ReadConfig[testConfig](path)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrNotFound))
}

func TestReadRecursively(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	err := os.MkdirAll(nested, 0777)
	if err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(root, "settings.json5"), `{ state: "MS" }`)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	err = os.Chdir(nested)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := ReadRecursively[testConfig]("settings.json5")
	require.NoError(t, err)
	require.Equal(t, "MS", cfg.State)

	_, err = ReadRecursively[testConfig]("does-not-exist-anywhere.json5")
	require.True(t, errors.Is(err, ErrNotFound))
}
