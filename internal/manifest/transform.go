package manifest

import (
	"maps"
	"slices"

	json "github.com/virtuald/go-ordered-json"
)

// Fixed values written into prepared manifests.
const (
	DefaultScope         = "@growth-blocks"
	DefaultStubVersion   = "0.0.0-stub"
	DefaultRepositoryURL = "https://gitlab.tcsbank.ru/ded-pwa-forms/growth-blocks"
	DefaultAuthor        = "unknown"
	SchemaVersion        = "1.0"
)

// IntegrationSettings parameterizes Transform.
type IntegrationSettings struct {
	Scope            string
	StubVersion      string
	RepositoryURL    string
	PeerDependencies map[string]string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() IntegrationSettings {
	return IntegrationSettings{
		Scope:         DefaultScope,
		StubVersion:   DefaultStubVersion,
		RepositoryURL: DefaultRepositoryURL,
		PeerDependencies: map[string]string{
			DefaultScope + "/mocks": "^" + DefaultStubVersion,
			"classnames":            "^" + DefaultStubVersion,
		},
	}
}

// PackageName returns the scoped package name for a microfrontend.
func (s IntegrationSettings) PackageName(name string) string {
	if s.Scope == "" {
		return name
	}
	return s.Scope + "/" + name
}

// Transform returns the integration manifest for microfrontend name. doc is
// not modified. Keys that are not rewritten keep their value and position;
// new keys are appended.
func Transform(doc *Document, name string, s IntegrationSettings) *Document {
	out := doc.Clone()

	out.Set("name", s.PackageName(name))
	out.Set("version", s.StubVersion)
	if v, _ := out.Get("description"); !truthy(v) {
		out.Set("description", "Microfrontend "+name)
	}
	out.Set("repository", object("type", "git", "url", s.RepositoryURL))
	out.Set("boxyConfig", object("schema", object("version", SchemaVersion)))
	if v, _ := out.Get("author"); !truthy(v) {
		out.Set("author", DefaultAuthor)
	}
	out.Set("released", true)

	out.Set("peerDependencies", mergePeers(out, s.PeerDependencies))
	out.Delete("dependencies")

	return out
}

// mergePeers overlays fixed onto the existing peerDependencies object.
// Existing entries keep their order; new ones are appended sorted by name.
func mergePeers(doc *Document, fixed map[string]string) json.OrderedObject {
	var peers json.OrderedObject
	if v, ok := doc.Get("peerDependencies"); ok {
		if obj, ok := v.(json.OrderedObject); ok {
			peers = obj
		}
	}
	merged := &Document{members: peers}
	for _, k := range slices.Sorted(maps.Keys(fixed)) {
		merged.Set(k, fixed[k])
	}
	if merged.members == nil {
		return json.OrderedObject{}
	}
	return merged.members
}
