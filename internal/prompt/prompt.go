// Package prompt asks the operator single-choice questions.
package prompt

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
)

// Option is one labeled answer of a Question.
type Option struct {
	Value string
	Label string
}

// Question is a single-choice question with a closed set of options.
type Question struct {
	Message string
	Options []Option
	// Default is the Value preselected by interactive providers.
	Default string
}

// label returns the display label of an option.
func (o Option) label() string {
	if o.Label == "" {
		return o.Value
	}
	return o.Label
}

// ChoiceProvider answers a Question with one of its option values.
// Providers return an error wrapping errors.ErrAborted when the operator
// gives no answer.
type ChoiceProvider interface {
	Choose(ctx context.Context, q Question) (string, error)
}

// Static answers every question with a fixed value. An empty value behaves
// like an aborted prompt.
type Static string

// Choose implements ChoiceProvider.
func (s Static) Choose(_ context.Context, q Question) (string, error) {
	if s == "" {
		return "", aborted(q)
	}
	for _, o := range q.Options {
		if o.Value == string(s) {
			return o.Value, nil
		}
	}
	return "", fmt.Errorf("%q is not one of the offered options", string(s))
}

// Interactive returns the survey provider when stdin is a terminal and the
// line provider otherwise.
func Interactive() ChoiceProvider {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return &Survey{}
	}
	return NewLine(os.Stdin, os.Stderr)
}

func aborted(q Question) error {
	return fmt.Errorf("%w: no answer to %q", mfeerrors.ErrAborted, q.Message)
}
