package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	tbl := NewTable("NAME", "STORIES").
		Row("desktop-billing-form", "1").
		Row("mobile-cart", "3")

	out := stripAnsi(tbl.String())
	assert.Equal(t, 2, tbl.Len())
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "desktop-billing-form")
	assert.Contains(t, out, "mobile-cart")
}

func TestRenderMicrofrontendTable(t *testing.T) {
	out := stripAnsi(RenderMicrofrontendTable([]MicrofrontendRow{
		{Name: "desktop-billing-form", Platform: "desktop", Package: "@growth-blocks/desktop-billing-form", Stories: 1, Component: true},
		{Name: "legacy", Platform: "-", Stories: 0},
	}))

	assert.Contains(t, out, "PLATFORM")
	assert.Contains(t, out, "@growth-blocks/desktop-billing-form")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "missing")
}
