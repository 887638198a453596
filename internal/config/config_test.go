package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no inherited config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{"VOCABQUIZ_SOURCE", "VOCABQUIZ_CATALOG", "VOCABQUIZ_SEED", "VOCABQUIZ_ENV", "VOCABQUIZ_LOG_FILE", "VOCABQUIZ_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "final_word.json", cfg.Source)
	assert.Equal(t, "", cfg.Catalog)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "state", "vocabquiz", "vocabquiz.log"), cfg.Log.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("VOCABQUIZ_SOURCE", "sqlite:///tmp/words.db")
	t.Setenv("VOCABQUIZ_SEED", "42")
	t.Setenv("VOCABQUIZ_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite:///tmp/words.db", cfg.Source)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("VOCABQUIZ_CATALOG=images.yaml\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("VOCABQUIZ_CATALOG") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "images.yaml", cfg.Catalog)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	doc := "source: words.db\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(doc), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "words.db", cfg.Source)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_FlagsWinWhenSet(t *testing.T) {
	isolate(t)
	t.Setenv("VOCABQUIZ_SOURCE", "from-env.json")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("source", "", "")
	fs.String("catalog", "", "")
	require.NoError(t, fs.Parse([]string{"--source", "from-flag.json"}))

	cfg, err := Load(
		Bind(fs, "source", "source"),
		Bind(fs, "catalog", "catalog"),
		Bind(fs, "seed", "missing"),
	)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.json", cfg.Source)
	assert.Equal(t, "", cfg.Catalog)
}
