package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line asks with a numbered menu over plain streams. It is used when stdin
// is not a terminal.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

// NewLine creates a line provider reading answers from r and writing the
// menu to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Choose implements ChoiceProvider. The answer may be the option number or
// its value. End of input or an empty line aborts.
func (l *Line) Choose(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprintf(l.w, "%s\n", q.Message)
	for i, o := range q.Options {
		fmt.Fprintf(l.w, "  %d) %s\n", i+1, o.label())
	}
	fmt.Fprintf(l.w, "Enter number [1-%d]: ", len(q.Options))

	line, err := l.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading selection: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", aborted(q)
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(q.Options) {
			return "", fmt.Errorf("invalid selection %q: choose 1-%d", answer, len(q.Options))
		}
		return q.Options[n-1].Value, nil
	}
	for _, o := range q.Options {
		if strings.EqualFold(answer, o.Value) {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("invalid selection %q: choose 1-%d", answer, len(q.Options))
}
