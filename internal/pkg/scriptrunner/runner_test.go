package scriptrunner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.sh")
	content := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
	return path
}

func newTestRunner(timeout time.Duration) *Runner {
	return NewRunner(timeout, zerolog.Nop())
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	script := writeScript(t, `echo "seeded 50 students"`)
	res := newTestRunner(5*time.Second).Run(context.Background(), script)

	assert.True(t, res.OK)
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, res.Output, "seeded 50 students")
}

func TestRun_NonZeroExit(t *testing.T) {
	t.Parallel()

	script := writeScript(t, "echo failing\nexit 3")
	res := newTestRunner(5*time.Second).Run(context.Background(), script)

	assert.False(t, res.OK)
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, res.Output, "failing")
	assert.Contains(t, res.Output, "script failed")
}

func TestRun_MissingScript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.sh")
	res := newTestRunner(5*time.Second).Run(context.Background(), path)

	assert.False(t, res.OK)
	assert.Equal(t, -1, res.ExitCode)
	assert.Contains(t, res.Output, "script not found")
}

func TestRun_Timeout(t *testing.T) {
	t.Parallel()

	script := writeScript(t, "sleep 5")
	res := newTestRunner(100*time.Millisecond).Run(context.Background(), script)

	assert.False(t, res.OK)
	assert.Equal(t, -1, res.ExitCode)
	assert.Contains(t, res.Output, "script timed out")
}

func TestRun_TimeoutWithBackgroundedChild(t *testing.T) {
	t.Parallel()

	// The backgrounded sleep inherits the output pipe and outlives the kill of
	// its parent; Run must still return shortly after the deadline instead of
	// waiting for the orphan to release the pipe.
	script := writeScript(t, "sleep 10 &\nsleep 30")

	start := time.Now()
	res := newTestRunner(200*time.Millisecond).Run(context.Background(), script)
	elapsed := time.Since(start)

	assert.False(t, res.OK)
	assert.Contains(t, res.Output, "script timed out")
	assert.Less(t, elapsed, 5*time.Second)
}
