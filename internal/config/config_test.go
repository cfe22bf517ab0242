package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prkumar-ishir/candidate-profiling/internal/keywords"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeTempConfig(t, `{"limit": 10, "port": 9090, "semantic": true}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Limit)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Semantic)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"limit": `)

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidate_MutuallyExclusiveInputs(t *testing.T) {
	cfg := &Config{JD: "jd.txt", JDURL: "https://example.com/jd"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_NegativeLimit(t *testing.T) {
	cfg := &Config{Limit: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadPort(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingJDFile(t *testing.T) {
	cfg := &Config{JD: filepath.Join(t.TempDir(), "absent.txt")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidate_OK(t *testing.T) {
	jd := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(jd, []byte("Senior Go engineer"), 0o644))

	cfg := &Config{JD: jd, Limit: 5, Port: 8080}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Limit: 12}
	merged := cfg.MergeWithDefaults(Config{APIKey: "k", Port: 9000, Limit: 40})

	assert.Equal(t, 12, merged.Limit, "explicit value wins")
	assert.Equal(t, "k", merged.APIKey)
	assert.Equal(t, 9000, merged.Port)
}

func TestMergeWithDefaults_Fallbacks(t *testing.T) {
	cfg := &Config{}
	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, keywords.DefaultLimit, merged.Limit)
	assert.Equal(t, DefaultPort, merged.Port)
}
