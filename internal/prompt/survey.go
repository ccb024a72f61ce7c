package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Survey asks with an arrow-key select on the terminal.
type Survey struct{}

// Choose implements ChoiceProvider.
func (s *Survey) Choose(ctx context.Context, q Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	labels := make([]string, len(q.Options))
	byLabel := make(map[string]string, len(q.Options))
	var def string
	for i, o := range q.Options {
		labels[i] = o.label()
		byLabel[o.label()] = o.Value
		if o.Value == q.Default {
			def = o.label()
		}
	}

	sel := &survey.Select{
		Message: q.Message,
		Options: labels,
	}
	if def != "" {
		sel.Default = def
	}

	var answer string
	err := survey.AskOne(sel, &answer, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", aborted(q)
		}
		return "", fmt.Errorf("prompting: %w", err)
	}

	value, ok := byLabel[answer]
	if !ok {
		return "", aborted(q)
	}
	return value, nil
}
