package manifest

import (
	"fmt"
	"maps"
	"slices"

	"github.com/Masterminds/semver/v3"

	mfeerrors "github.com/growth-blocks/mfe/internal/errors"
)

// VersionIssue is a stub version or peer range that does not parse.
type VersionIssue struct {
	Field string
	Value string
	Err   error
}

// CheckVersions checks that the stub version is valid semver, that every
// peer dependency range is a valid constraint, and that peer ranges pinned
// to the stub accept it. It returns nil when everything checks out.
func CheckVersions(s IntegrationSettings) []VersionIssue {
	var issues []VersionIssue

	stub, err := semver.StrictNewVersion(s.StubVersion)
	if err != nil {
		issues = append(issues, VersionIssue{Field: "stubVersion", Value: s.StubVersion, Err: err})
	}

	for _, name := range slices.Sorted(maps.Keys(s.PeerDependencies)) {
		rng := s.PeerDependencies[name]
		c, err := semver.NewConstraint(rng)
		if err != nil {
			issues = append(issues, VersionIssue{Field: "peerDependencies." + name, Value: rng, Err: err})
			continue
		}
		if stub != nil && stub.Prerelease() != "" && rng == "^"+s.StubVersion && !c.Check(stub) {
			issues = append(issues, VersionIssue{
				Field: "peerDependencies." + name,
				Value: rng,
				Err:   fmt.Errorf("range does not accept stub version %s", stub),
			})
		}
	}

	return issues
}

// VersionsError converts issues into a validation error, or nil.
func VersionsError(issues []VersionIssue) error {
	if len(issues) == 0 {
		return nil
	}
	first := issues[0]
	return mfeerrors.NewValidationError(
		fmt.Sprintf("%d version issue(s); first: %s %q: %v", len(issues), first.Field, first.Value, first.Err),
		first.Field,
		"use semver versions such as 0.0.0-stub and ranges such as ^0.0.0-stub",
	)
}
