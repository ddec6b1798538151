package file

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
	assert.Equal(t, "MONDO", s.Resolver.Namespace)
	assert.Equal(t, 100, s.Sequence.Padding)
	assert.Equal(t, 10*time.Second, s.Timeout())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
[resolver]
url = "http://localhost:8081/lookup"

[sequence]
padding = 250

[http]
timeout_seconds = 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))

	s, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081/lookup", s.Resolver.URL)
	assert.Equal(t, 250, s.Sequence.Padding)
	assert.Equal(t, 3*time.Second, s.Timeout())
	// Untouched sections keep their defaults.
	assert.Equal(t, Defaults().Graph.URL, s.Graph.URL)
	assert.Equal(t, "MONDO", s.Resolver.Namespace)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[resolver]
url = "http://from-file/lookup"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0600))

	t.Setenv("GIRAFFE_RESOLVER_URL", "http://from-env/lookup")
	t.Setenv("GIRAFFE_SEQUENCE_PADDING", "50")

	s, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "http://from-env/lookup", s.Resolver.URL)
	assert.Equal(t, 50, s.Sequence.Padding)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("not [valid toml"), 0600))

	_, err := Load(dir)

	assert.Error(t, err)
}
