// Package placeholder implements the {{TOKEN}} substitution used by
// microfrontend templates.
package placeholder

import (
	"regexp"
	"slices"
	"strings"
)

// Token is a recognized placeholder name.
type Token string

// Recognized tokens. The vocabulary is closed.
const (
	MicrofrontendName        Token = "MICROFRONTEND_NAME"
	MicrofrontendDescription Token = "MICROFRONTEND_DESCRIPTION"
	AuthorName               Token = "AUTHOR_NAME"
	ComponentName            Token = "COMPONENT_NAME"
	ComponentFileName        Token = "COMPONENT_FILE_NAME"
	MicrofrontendCategory    Token = "MICROFRONTEND_CATEGORY"
)

var vocabulary = []Token{
	MicrofrontendName,
	MicrofrontendDescription,
	AuthorName,
	ComponentName,
	ComponentFileName,
	MicrofrontendCategory,
}

// Tokens returns every recognized token in declaration order.
func Tokens() []Token {
	return slices.Clone(vocabulary)
}

// Lookup returns the token named name, if it is recognized.
func Lookup(name string) (Token, bool) {
	t := Token(name)
	return t, slices.Contains(vocabulary, t)
}

// String renders the token as it appears in template text.
func (t Token) String() string {
	return "{{" + string(t) + "}}"
}

// Map assigns replacement text to tokens.
type Map map[Token]string

// tokenPattern matches anything shaped like a placeholder, recognized or not.
var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z_][A-Za-z0-9_]*)\}\}`)

// Substitute replaces every occurrence of every token in m. The input is
// scanned once, so replacement text is never substituted again and the
// result does not depend on map iteration order.
func Substitute(text string, m Map) string {
	if len(m) == 0 {
		return text
	}

	keys := make([]Token, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k.String(), m[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Scan returns the names of all placeholder-shaped tokens in text, each
// once, in order of first appearance.
func Scan(text string) []string {
	var names []string
	for _, match := range tokenPattern.FindAllStringSubmatch(text, -1) {
		if !slices.Contains(names, match[1]) {
			names = append(names, match[1])
		}
	}
	return names
}

// Unresolved lists the tokens still present after substituting m into text.
func Unresolved(text string, m Map) []string {
	return Scan(Substitute(text, m))
}

// Unknown lists the placeholder-shaped tokens in text that are not part of
// the recognized vocabulary.
func Unknown(text string) []string {
	var out []string
	for _, name := range Scan(text) {
		if _, ok := Lookup(name); !ok {
			out = append(out, name)
		}
	}
	return out
}
