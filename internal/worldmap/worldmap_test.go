package worldmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_BindsAllowListedIDs(t *testing.T) {
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg">
		<g id="world">
			<path id="fr" d="M0 0"/>
			<path id="IN" d="M1 1"/>
			<path id="ZZ" d="M2 2"/>
			<path d="M3 3"/>
		</g>
	</svg>`)

	m := Parse(svg)

	// Only allow-listed codes bind, in allow-list order; IDs are
	// case-insensitive.
	assert.Equal(t, []string{"IN", "FR"}, m.Countries())
	assert.True(t, m.Interactive("fr"))
	assert.True(t, m.Interactive("IN"))
	assert.False(t, m.Interactive("ZZ"))
	assert.False(t, m.Interactive("BR"))
	assert.Equal(t, svg, m.SVG())
}

func TestParse_MalformedDocument(t *testing.T) {
	svg := []byte(`<svg><path id="IN"/><path id="FR"`)

	m := Parse(svg)

	// Binding keeps whatever was scanned before the document broke.
	assert.Equal(t, []string{"IN"}, m.Countries())
}

func TestParse_NotMarkup(t *testing.T) {
	m := Parse([]byte(`{"not": "svg"}`))
	assert.Empty(t, m.Countries())
}
