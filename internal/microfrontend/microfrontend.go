// Package microfrontend resolves command-line input into the naming values
// used to instantiate a microfrontend template.
package microfrontend

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
	"github.com/growth-blocks/mfe/internal/placeholder"
	"github.com/growth-blocks/mfe/internal/prompt"
)

// Defaults for optional arguments.
const (
	DefaultAuthor   = "unknown"
	DefaultCategory = "pages"
)

// GenerationConfig holds every value derived for one new microfrontend.
// It is built once by Resolve and never modified.
type GenerationConfig struct {
	// Name is the final, platform-prefixed microfrontend name.
	Name string
	// RawName is the name as given on the command line.
	RawName           string
	Description       string
	Author            string
	ComponentName     string
	ComponentFileName string
	MicrofrontendName string
	Category          string
	Platform          Platform
}

// Placeholders returns the substitution map for the template.
func (c GenerationConfig) Placeholders() placeholder.Map {
	return placeholder.Map{
		placeholder.MicrofrontendName:        c.MicrofrontendName,
		placeholder.MicrofrontendDescription: c.Description,
		placeholder.AuthorName:               c.Author,
		placeholder.ComponentName:            c.ComponentName,
		placeholder.ComponentFileName:        c.ComponentFileName,
		placeholder.MicrofrontendCategory:    c.Category,
	}
}

// ResolveOptions controls Resolve.
type ResolveOptions struct {
	// Provider asks for the platform. Required unless Plain or Platform is set.
	Provider prompt.ChoiceProvider

	// Platform preselects the platform without prompting.
	Platform string

	// Plain skips platform selection entirely; the name is not prefixed.
	Plain bool

	// Category overrides DefaultCategory.
	Category string

	// Usage is shown with usage errors.
	Usage string
}

// Resolve builds a GenerationConfig from positional arguments
// <name> [description] [author] and the platform choice.
func Resolve(ctx context.Context, args []string, opts ResolveOptions) (GenerationConfig, error) {
	var rawName string
	if len(args) > 0 {
		rawName = strings.TrimSpace(args[0])
	}
	if rawName == "" {
		return GenerationConfig{}, mfeerrors.NewUsageError("microfrontend name is required", opts.Usage)
	}
	if err := ValidateName(rawName); err != nil {
		return GenerationConfig{}, mfeerrors.NewUsageError(err.Error(), opts.Usage)
	}

	platform, err := selectPlatform(ctx, opts)
	if err != nil {
		return GenerationConfig{}, err
	}

	name := rawName
	if platform != PlatformNone {
		name = platform.Prefix() + "-" + rawName
	}

	description := "Microfrontend " + name
	if len(args) > 1 && strings.TrimSpace(args[1]) != "" {
		description = args[1]
	}
	author := DefaultAuthor
	if len(args) > 2 && strings.TrimSpace(args[2]) != "" {
		author = args[2]
	}
	category := DefaultCategory
	if opts.Category != "" {
		category = opts.Category
	}

	return GenerationConfig{
		Name:              name,
		RawName:           rawName,
		Description:       description,
		Author:            author,
		ComponentName:     ComponentName(name),
		ComponentFileName: name,
		MicrofrontendName: name,
		Category:          category,
		Platform:          platform,
	}, nil
}

func selectPlatform(ctx context.Context, opts ResolveOptions) (Platform, error) {
	if opts.Plain {
		return PlatformNone, nil
	}
	if opts.Platform != "" {
		p, err := ParsePlatform(opts.Platform)
		if err != nil {
			return PlatformNone, mfeerrors.NewUsageError(err.Error(), opts.Usage)
		}
		return p, nil
	}
	if opts.Provider == nil {
		return PlatformNone, errors.New("no platform provider configured")
	}

	answer, err := opts.Provider.Choose(ctx, platformQuestion())
	if err != nil {
		if errors.Is(err, mfeerrors.ErrAborted) {
			return PlatformNone, &mfeerrors.DetailError{
				Type:    "aborted",
				Message: "platform selection cancelled",
				Hint:    "pass --platform desktop|mobile|common to skip the prompt",
				Cause:   err,
			}
		}
		return PlatformNone, fmt.Errorf("selecting platform: %w", err)
	}
	return ParsePlatform(answer)
}

// ValidateName rejects names that would escape the microfrontends root.
func ValidateName(name string) error {
	if name == "." || name == ".." {
		return fmt.Errorf("invalid microfrontend name %q", name)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator) {
		return fmt.Errorf("microfrontend name %q must not contain a path separator", name)
	}
	return nil
}

// ComponentName derives the component identifier from a dash-separated
// name: each segment gets an upper-case first letter, the rest of the
// segment is kept, and segments are joined without separator.
func ComponentName(name string) string {
	upper := cases.Upper(language.Und)
	var sb strings.Builder
	for _, segment := range strings.Split(name, "-") {
		if segment == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(segment)
		sb.WriteString(upper.String(string(r)))
		sb.WriteString(segment[size:])
	}
	return sb.String()
}
