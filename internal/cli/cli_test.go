package cli

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture_config writes a config file caching into a temp dir and returns
// its path and the expected cache root
func fixture_config(t *testing.T) (string, string) {
	t.Helper()
	tempDir := t.TempDir()
	internal := filepath.Join(tempDir, "internal")
	configPath := filepath.Join(tempDir, "config.yaml")

	content := fmt.Sprintf(`
cache:
  dir_name: images
  internal_dir: %q
log:
  level: error
`, internal)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	return configPath, filepath.Join(internal, "images")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFetchCommand(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, requ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("image bytes for " + requ.URL.Path))
	}))
	defer upstream.Close()

	configPath, root := fixture_config(t)
	url := upstream.URL + "/logo.png"

	t.Run("first fetch - cache miss", func(t *testing.T) {
		out, err := execute(t, "--config", configPath, "fetch", url)
		require.NoError(t, err)

		path := strings.TrimSpace(out)
		assert.Equal(t, root, filepath.Dir(path))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "image bytes for /logo.png", string(data))
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("second fetch - cache hit", func(t *testing.T) {
		_, err := execute(t, "--config", configPath, "fetch", url)
		require.NoError(t, err)
		assert.Equal(t, int32(1), hits.Load())
	})
}

func TestFetchCommandReportsFailures(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, requ *http.Request) {
		if requ.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer upstream.Close()

	configPath, _ := fixture_config(t)

	out, err := execute(t, "--config", configPath, "fetch", upstream.URL+"/broken", upstream.URL+"/fine")

	assert.EqualError(t, err, "1 of 2 downloads failed")
	// the working URL is still downloaded
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestPathCommand(t *testing.T) {
	configPath, root := fixture_config(t)

	out, err := execute(t, "--config", configPath, "path", "http://a.com/x?y=1", "https://b.org/c.png")
	require.NoError(t, err)

	expected := filepath.Join(root, "a_com_x_y_1") + "\n" + filepath.Join(root, "b_org_c_png") + "\n"
	assert.Equal(t, expected, out)
}

func TestRootCommandUsesExternalDir(t *testing.T) {
	tempDir := t.TempDir()
	external := filepath.Join(tempDir, "sdcard")
	require.NoError(t, os.Mkdir(external, 0755))
	configPath := filepath.Join(tempDir, "config.yaml")
	content := fmt.Sprintf("cache:\n  external_dir: %q\nlog:\n  level: error\n", external)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	out, err := execute(t, "--config", configPath, "root")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(external, "cached_images")+"\n", out)
}

func TestInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("download:\n  buffer_size: -1\n"), 0644))

	_, err := execute(t, "--config", configPath, "root")

	assert.ErrorContains(t, err, "invalid configuration")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Equal(t, "cachedl version "+version+"\n", out)
}

func TestRunExitCode(t *testing.T) {
	assert.Equal(t, 0, Run([]string{"version"}))
	assert.Equal(t, 1, Run([]string{"fetch"}))
}
