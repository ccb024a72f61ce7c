package cmdutil

import (
	"errors"
	"fmt"
	"io"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/output"
)

// PrintError reports err through the logger. Detail errors are printed as
// their message with location and hint as key-values.
func PrintError(err error) {
	var detail *mfeerrors.DetailError
	if errors.As(err, &detail) {
		var keyvals []interface{}
		if detail.Location != "" {
			keyvals = append(keyvals, "location", detail.Location)
		}
		if detail.Hint != "" {
			keyvals = append(keyvals, "hint", detail.Hint)
		}
		if detail.Cause != nil && !isSentinel(detail.Cause) {
			keyvals = append(keyvals, "cause", detail.Cause)
		}
		output.Error(fmt.Sprintf("%s: %s", detail.Type, detail.Message), keyvals...)
		return
	}
	output.Error(mfeerrors.Message(err))
}

func isSentinel(err error) bool {
	for _, s := range []error{
		mfeerrors.ErrUsage,
		mfeerrors.ErrAborted,
		mfeerrors.ErrExists,
		mfeerrors.ErrNotFound,
		mfeerrors.ErrValidation,
	} {
		if err == s {
			return true
		}
	}
	return false
}

// Fail prints err and returns it as an ExitError marked as printed.
// An ExitError that was already printed is returned unchanged.
func Fail(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *mfeerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Printed {
		return err
	}
	PrintError(err)
	e := mfeerrors.NewExitError(err)
	e.Printed = true
	return e
}

// WriteFileTree writes the tree of files below root, each with status.
func WriteFileTree(w io.Writer, root string, files []string, status string) {
	entries := make(map[string]string, len(files))
	for _, f := range files {
		entries[f] = status
	}
	fmt.Fprint(w, output.RenderFileTree(root, entries))
}

// WriteNextSteps writes the numbered next steps.
func WriteNextSteps(w io.Writer, steps []string) {
	fmt.Fprintln(w)
	fmt.Fprint(w, output.FormatNextSteps(steps))
}
