package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMap() Map {
	return Map{
		MicrofrontendName:        "desktop-billing-form",
		MicrofrontendDescription: "Microfrontend desktop-billing-form",
		AuthorName:               "unknown",
		ComponentName:            "DesktopBillingForm",
		ComponentFileName:        "desktop-billing-form",
		MicrofrontendCategory:    "pages",
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "{{MICROFRONTEND_NAME}}", MicrofrontendName.String())
	assert.Equal(t, "{{COMPONENT_FILE_NAME}}", ComponentFileName.String())
}

func TestLookup(t *testing.T) {
	tok, ok := Lookup("AUTHOR_NAME")
	assert.True(t, ok)
	assert.Equal(t, AuthorName, tok)

	_, ok = Lookup("author_name")
	assert.False(t, ok, "tokens are case-sensitive")

	_, ok = Lookup("VERSION")
	assert.False(t, ok)
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "every occurrence replaced",
			text: "{{COMPONENT_NAME}} and {{COMPONENT_NAME}}",
			want: "DesktopBillingForm and DesktopBillingForm",
		},
		{
			name: "mixed tokens",
			text: `{"name": "{{MICROFRONTEND_NAME}}", "author": "{{AUTHOR_NAME}}"}`,
			want: `{"name": "desktop-billing-form", "author": "unknown"}`,
		},
		{
			name: "unknown token kept verbatim",
			text: "{{COMPONENT_NAME}} {{VERSION}}",
			want: "DesktopBillingForm {{VERSION}}",
		},
		{
			name: "adjacent tokens",
			text: "{{COMPONENT_FILE_NAME}}{{MICROFRONTEND_CATEGORY}}",
			want: "desktop-billing-formpages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.text, sampleMap()))
		})
	}
}

func TestSubstitute_NoRescan(t *testing.T) {
	m := Map{
		MicrofrontendName: "{{AUTHOR_NAME}}",
		AuthorName:        "someone",
	}
	assert.Equal(t, "{{AUTHOR_NAME}} someone", Substitute("{{MICROFRONTEND_NAME}} {{AUTHOR_NAME}}", m))
}

func TestSubstitute_OrderIndependent(t *testing.T) {
	text := "{{MICROFRONTEND_NAME}}/{{COMPONENT_NAME}}/{{AUTHOR_NAME}}/{{MICROFRONTEND_CATEGORY}}"
	full := sampleMap()
	want := Substitute(text, full)

	// Applying one token at a time in every rotation of the vocabulary gives
	// the same result as a single combined pass.
	tokens := Tokens()
	for shift := range tokens {
		got := text
		for i := range tokens {
			tok := tokens[(i+shift)%len(tokens)]
			got = Substitute(got, Map{tok: full[tok]})
		}
		assert.Equal(t, want, got, "rotation %d", shift)
	}
}

func TestSubstitute_IdempotentWithoutTokens(t *testing.T) {
	for _, text := range []string{"", "plain text", "{ single braces }", "{{lower case}}"} {
		assert.Equal(t, text, Substitute(text, sampleMap()))
	}
	assert.Equal(t, "x {{A}}", Substitute("x {{A}}", nil))
}

func TestScan(t *testing.T) {
	names := Scan("{{A}} {{B_2}} {{A}} {{ C }} {{9X}}")
	assert.Equal(t, []string{"A", "B_2"}, names)
	assert.Empty(t, Scan("nothing here"))
}

func TestUnresolved(t *testing.T) {
	text := "import './{{COMPONENT_FILE_NAME}}'; // {{TODO_TOKEN}}"
	assert.Equal(t, []string{"TODO_TOKEN"}, Unresolved(text, sampleMap()))

	all := ""
	for _, tok := range Tokens() {
		all += tok.String() + "\n"
	}
	assert.Empty(t, Unresolved(all, sampleMap()))
}

func TestUnknown(t *testing.T) {
	got := Unknown("{{COMPONENT_NAME}} {{VERSION}} {{AUTHOR_NAME}} {{Other}}")
	require.Len(t, got, 2)
	assert.Equal(t, []string{"VERSION", "Other"}, got)
}
