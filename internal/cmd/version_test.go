package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growth-blocks/mfe/internal/cmdutil"
)

func TestNewVersionCmd(t *testing.T) {
	c := NewVersionCmd(&cmdutil.GlobalConfig{})

	assert.Equal(t, "version", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)
}

func TestVersionCmd_Execute(t *testing.T) {
	project := isolate(t)

	res := mfe(t, project, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "mfe:")
	assert.Contains(t, res.stdout, "Version:")
}

func TestRoot_VerboseLogsResolution(t *testing.T) {
	project := isolate(t)

	res := mfe(t, project, "", "version", "--verbose")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "config value resolved")
	assert.Contains(t, res.stderr, "projectDir")
}
