package microfrontend

import (
	"fmt"
	"strings"

	"github.com/growth-blocks/mfe/internal/prompt"
)

// Platform is the target platform of a microfrontend.
type Platform string

// Supported platforms. PlatformNone is used by the plain variant, which
// does not ask for a platform and does not prefix the name.
const (
	PlatformNone    Platform = ""
	PlatformDesktop Platform = "desktop"
	PlatformMobile  Platform = "mobile"
	PlatformCommon  Platform = "common"
)

// DefaultPlatform is preselected in the platform prompt.
const DefaultPlatform = PlatformDesktop

// Platforms returns the selectable platforms in prompt order.
func Platforms() []Platform {
	return []Platform{PlatformDesktop, PlatformMobile, PlatformCommon}
}

// ParsePlatform parses a platform name.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Platforms() {
		if p == known {
			return p, nil
		}
	}
	return PlatformNone, fmt.Errorf("unknown platform %q (want one of desktop, mobile, common)", s)
}

// Prefix returns the name prefix for the platform. Common microfrontends
// are prefixed "independent".
func (p Platform) Prefix() string {
	switch p {
	case PlatformCommon:
		return "independent"
	default:
		return string(p)
	}
}

// platformQuestion is the prompt shown by the interactive variant.
func platformQuestion() prompt.Question {
	return prompt.Question{
		Message: "Select the microfrontend platform:",
		Options: []prompt.Option{
			{Value: string(PlatformDesktop), Label: "desktop"},
			{Value: string(PlatformMobile), Label: "mobile"},
			{Value: string(PlatformCommon), Label: "common (independent)"},
		},
		Default: string(DefaultPlatform),
	}
}
