package internalexec

import (
	"bytes"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell assumptions do not hold on Windows")
	}

	cmd := exec.Command("echo", "hello world")

	result, err := Run(cmd)
	require.NoError(t, err)
	assert.Equal(t, "hello world", result.Stdout)
	assert.Equal(t, "", result.Stderr)
}

func TestRun_WithError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell assumptions do not hold on Windows")
	}

	cmd := exec.Command("sh", "-c", "echo 'npm ERR! 404' >&2; exit 1")

	result, err := Run(cmd)
	require.Error(t, err)
	assert.Equal(t, "", result.Stdout)
	assert.Equal(t, "npm ERR! 404", result.Stderr)
	assert.Equal(t, "npm ERR! 404", PrimaryOutput(result))
}

func TestRun_KeepsAttachedWriters(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell assumptions do not hold on Windows")
	}

	var stdoutBuf bytes.Buffer
	cmd := exec.Command("echo", "piped output")
	cmd.Stdout = &stdoutBuf

	result, err := Run(cmd)
	require.NoError(t, err)
	assert.Equal(t, "piped output", result.Stdout)
	assert.Equal(t, "piped output\n", stdoutBuf.String())
}

func TestPrimaryOutputFallsBackToStdout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "out", PrimaryOutput(Result{Stdout: "out"}))
	assert.Equal(t, "", PrimaryOutput(Result{}))
}
