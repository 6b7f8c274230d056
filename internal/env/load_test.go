package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	vars, err := Read(strings.NewReader(`
# sketch overrides
SKETCH_SEED=42
export SKETCH_LAVA_BLOBS = "20"
SKETCH_NAME='wormhole'
EMPTY=
`))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"SKETCH_SEED":       "42",
		"SKETCH_LAVA_BLOBS": "20",
		"SKETCH_NAME":       "wormhole",
		"EMPTY":             "",
	}, vars)

	_, err = Read(strings.NewReader("JUSTAKEY\n"))
	assert.ErrorContains(t, err, "line 1")
}

func TestLoadKeepsExistingEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SKETCHLAB_TEST_A=file\nSKETCHLAB_TEST_B=file\n"), 0644))
	t.Setenv("SKETCHLAB_TEST_A", "process")
	t.Setenv("SKETCHLAB_TEST_B", "")
	require.NoError(t, os.Unsetenv("SKETCHLAB_TEST_B"))

	require.NoError(t, Load(path))
	assert.Equal(t, "process", os.Getenv("SKETCHLAB_TEST_A"))
	assert.Equal(t, "file", os.Getenv("SKETCHLAB_TEST_B"))
}

func TestLoadMissingFile(t *testing.T) {
	assert.NoError(t, Load(filepath.Join(t.TempDir(), "nope.env")))
}
