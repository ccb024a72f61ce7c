package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tests run without a terminal on stdout, so the action runs directly.
func TestRunWithSpinner_NoTTY(t *testing.T) {
	if IsTTY() {
		t.Skip("stdout is a terminal")
	}

	called := false
	err := RunWithSpinner(context.Background(), "Copying", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	boom := errors.New("boom")
	err = RunWithSpinner(context.Background(), "Copying", func() error { return boom })
	assert.ErrorIs(t, err, boom)
}
