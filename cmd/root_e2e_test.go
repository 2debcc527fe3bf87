package cmd_test

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// testBinaryName is the name of the test binary for E2E tests.
	testBinaryName = "albumgrab-test"
)

// TestMain builds the binary before running E2E tests.
func TestMain(m *testing.M) {
	// Build the binary for testing.
	//nolint:noctx // TestMain doesn't have access to context, and build is needed before tests run.
	buildCmd := exec.Command("go", "build", "-o", testBinaryName, "../.")
	if err := buildCmd.Run(); err != nil {
		os.Exit(1)
	}

	// Run tests.
	code := m.Run()

	// Cleanup.
	_ = os.Remove(testBinaryName)

	os.Exit(code)
}

// writeStubTool creates an executable shell script standing in for yt-dlp or ffmpeg.
func writeStubTool(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	script := "#!/bin/sh\nexit 0\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755)) //nolint:gosec // It's a test stub.

	return path
}

// freeListenAddress reserves a port and releases it for the server under test.
func freeListenAddress(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	address := listener.Addr().String()
	require.NoError(t, listener.Close())

	return address
}

func TestE2E_ServerSmoke(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	ytdlpPath := writeStubTool(t, tempDir, "yt-dlp")
	ffmpegPath := writeStubTool(t, tempDir, "ffmpeg")
	listenAddress := freeListenAddress(t)

	configContent := fmt.Sprintf(`
listen_address: "%s"
output_path: "%s"
ytdlp_path: "%s"
ffmpeg_path: "%s"
max_concurrent_conversions: 1
conversion_timeout: "1m"
shutdown_timeout: "5s"
write_tags: false
log_level: "debug"
`, listenAddress, filepath.Join(tempDir, "downloads"), ytdlpPath, ffmpegPath)

	configPath := filepath.Join(tempDir, "test-config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644)) //nolint:gosec // It's a test file.

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	serverCmd := exec.Command("./"+testBinaryName, "--config", configPath)
	require.NoError(t, serverCmd.Start())

	defer func() {
		_ = serverCmd.Process.Kill()
		_ = serverCmd.Wait()
	}()

	baseURL := "http://" + listenAddress

	// Wait until the server accepts connections.
	require.Eventually(t, func() bool {
		response, err := http.Get(baseURL + "/healthz") //nolint:noctx // Simple readiness probe.
		if err != nil {
			return false
		}

		defer response.Body.Close()

		return response.StatusCode == http.StatusOK
	}, 10*time.Second, 50*time.Millisecond)

	// A request without a playlist URL must be rejected.
	response, err := http.Get(baseURL + "/download-album") //nolint:noctx // E2E request.
	require.NoError(t, err)

	defer response.Body.Close()

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)

	var body struct {
		Error string `json:"error"`
	}

	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, "Error: No URL provided", body.Error)

	// SIGTERM must shut the server down cleanly.
	require.NoError(t, serverCmd.Process.Signal(syscall.SIGTERM))

	waitErrors := make(chan error, 1)

	go func() {
		waitErrors <- serverCmd.Wait()
	}()

	select {
	case err = <-waitErrors:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not exit after SIGTERM")
	}
}

func TestE2E_InvalidConfig(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	ytdlpPath := writeStubTool(t, tempDir, "yt-dlp")
	ffmpegPath := writeStubTool(t, tempDir, "ffmpeg")

	configContent := fmt.Sprintf(`
listen_address: ":3000"
output_path: "downloads"
ytdlp_path: "%s"
ffmpeg_path: "%s"
max_concurrent_conversions: 1
conversion_timeout: "1m"
shutdown_timeout: "5s"
log_level: "whisper"
`, ytdlpPath, ffmpegPath)

	configPath := filepath.Join(tempDir, "test-config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644)) //nolint:gosec // It's a test file.

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	serverCmd := exec.Command("./"+testBinaryName, "--config", configPath)
	output, err := serverCmd.CombinedOutput()

	require.Error(t, err)
	assert.Contains(t, strings.ToLower(string(output)), "unknown log level")
}

func TestE2E_MissingConfigFile(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	serverCmd := exec.Command("./"+testBinaryName, "--config", configPath)
	output, err := serverCmd.CombinedOutput()

	require.Error(t, err)
	assert.Contains(t, strings.ToLower(string(output)), "failed to load configuration")
}

func TestE2E_Help(t *testing.T) {
	t.Parallel()

	//nolint:gosec,noctx // Test binary name is a constant, not user input. No context available in test.
	helpCmd := exec.Command("./"+testBinaryName, "--help")
	output, err := helpCmd.CombinedOutput()

	require.NoError(t, err)

	outputStr := string(output)
	assert.Contains(t, outputStr, "download-album")
	assert.Contains(t, outputStr, "--listen")
	assert.Contains(t, outputStr, "--output")
	assert.Contains(t, outputStr, "--concurrency")
}