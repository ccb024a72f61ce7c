package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
)

func platformQuestion() Question {
	return Question{
		Message: "Choose a platform",
		Options: []Option{
			{Value: "desktop", Label: "Desktop"},
			{Value: "mobile", Label: "Mobile"},
			{Value: "common", Label: "Common (independent)"},
		},
		Default: "desktop",
	}
}

func TestStatic(t *testing.T) {
	ctx := context.Background()

	got, err := Static("mobile").Choose(ctx, platformQuestion())
	require.NoError(t, err)
	assert.Equal(t, "mobile", got)

	_, err = Static("").Choose(ctx, platformQuestion())
	assert.True(t, errors.Is(err, mfeerrors.ErrAborted))

	_, err = Static("tablet").Choose(ctx, platformQuestion())
	require.Error(t, err)
	assert.False(t, errors.Is(err, mfeerrors.ErrAborted))
}

func TestLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		aborted bool
		wantErr bool
	}{
		{name: "by number", input: "2\n", want: "mobile"},
		{name: "by value", input: "common\n", want: "common"},
		{name: "value is case insensitive", input: "Desktop\n", want: "desktop"},
		{name: "no trailing newline", input: "3", want: "common"},
		{name: "empty line aborts", input: "\n", aborted: true},
		{name: "eof aborts", input: "", aborted: true},
		{name: "out of range", input: "7\n", wantErr: true},
		{name: "unknown value", input: "tablet\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewLine(strings.NewReader(tt.input), &out).Choose(context.Background(), platformQuestion())

			assert.Contains(t, out.String(), "Choose a platform")
			assert.Contains(t, out.String(), "  3) Common (independent)")

			switch {
			case tt.aborted:
				assert.ErrorIs(t, err, mfeerrors.ErrAborted)
			case tt.wantErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, mfeerrors.ErrAborted)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLine_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLine(strings.NewReader("1\n"), &bytes.Buffer{}).Choose(ctx, platformQuestion())
	assert.ErrorIs(t, err, context.Canceled)
}
