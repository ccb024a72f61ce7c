package cmdutil

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/output"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	output.SetupLogging(output.LogConfig{Writer: &buf})
	t.Cleanup(func() { output.SetupLogging(output.LogConfig{}) })
	return &buf
}

func TestPrintError_DetailError(t *testing.T) {
	buf := captureLog(t)

	PrintError(mfeerrors.NewNotFoundError(
		"microfrontend directory /p/src/microfrontends/x does not exist",
		"/p/src/microfrontends/x",
		"run mfe list",
	))

	out := buf.String()
	assert.Contains(t, out, "not found: microfrontend directory /p/src/microfrontends/x does not exist")
	assert.Contains(t, out, "location")
	assert.Contains(t, out, "run mfe list")
	assert.NotContains(t, out, "cause", "sentinel causes are not repeated")
}

func TestPrintError_DetailErrorWithCause(t *testing.T) {
	buf := captureLog(t)

	PrintError(&mfeerrors.DetailError{
		Type:    "aborted",
		Message: "platform selection cancelled",
		Cause:   fmt.Errorf("%w: interrupted", mfeerrors.ErrAborted),
	})

	out := buf.String()
	assert.Contains(t, out, "aborted: platform selection cancelled")
	assert.Contains(t, out, "interrupted")
}

func TestPrintError_PlainError(t *testing.T) {
	buf := captureLog(t)

	PrintError(fmt.Errorf("writing manifest: %w", errors.New("disk full")))
	assert.Contains(t, buf.String(), "writing manifest: disk full")
}

func TestFail(t *testing.T) {
	buf := captureLog(t)

	assert.NoError(t, Fail(nil))

	err := Fail(mfeerrors.NewExistsError("target exists", "/tmp/x", ""))
	var exitErr *mfeerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, exitErr.Printed)
	assert.Equal(t, mfeerrors.ExitFailure, exitErr.Code)
	assert.Equal(t, mfeerrors.ReasonExists, exitErr.Reason)
	assert.ErrorIs(t, err, mfeerrors.ErrExists)

	printed := buf.Len()
	assert.Same(t, err, Fail(err), "printed errors pass through")
	assert.Equal(t, printed, buf.Len(), "printed errors are not logged twice")
}

func TestWriteFileTree(t *testing.T) {
	var buf bytes.Buffer
	WriteFileTree(&buf, "desktop-a", []string{"package.json", "src/index.ts"}, output.StatusCreated)

	out := buf.String()
	assert.Contains(t, out, "desktop-a/")
	assert.Contains(t, out, "package.json")
	assert.Contains(t, out, "index.ts")
	assert.Contains(t, out, output.StatusCreated)
}

func TestWriteNextSteps(t *testing.T) {
	var buf bytes.Buffer
	WriteNextSteps(&buf, []string{"one", "two"})
	assert.Contains(t, buf.String(), "Next steps:")
	assert.Contains(t, buf.String(), "  2. two")
}
