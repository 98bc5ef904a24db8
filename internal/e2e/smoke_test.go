package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runRAC(t, binaryPath, home, "customers")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "c-tanaka")

	stdout, stderr, err = runRAC(t, binaryPath, home, "start")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "New customer:")
	assert.Contains(t, stdout, "step 1/5")

	_, stderr, err = runRAC(t, binaryPath, home, "select", "m-shrine")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runRAC(t, binaryPath, home, "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "step 2/5")

	_, err = os.Stat(filepath.Join(home, ".rac-tourist", "state.toml"))
	require.NoError(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "rac-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rac")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build rac binary: %s", string(output))
	return binaryPath
}

func runRAC(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(), "HOME="+home, "RAC_CONFIG=", "RAC_CATALOG_SOURCE=embedded", "RAC_STATE_BACKEND=toml")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
