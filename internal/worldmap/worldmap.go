package worldmap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// InteractiveCountries is the fixed allow-list of country codes the map
// makes clickable. Element IDs in the SVG outside this list are inert.
var InteractiveCountries = []string{
	"IN", "CN", "JP", "TH", "IT", "FR", "ES", "GR", "MX", "US", "BR", "EG",
}

// Map holds the loaded SVG document and the country codes bound to it.
type Map struct {
	raw   []byte
	codes []string
}

// Load reads and parses an SVG map file.
func Load(path string) (*Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	return Parse(raw), nil
}

// Parse scans an SVG document for element IDs that look like country
// codes and binds the ones on the allow-list, in allow-list order. A
// truncated or malformed document binds whatever was scanned before
// the error.
func Parse(raw []byte) *Map {
	present := make(map[string]bool)
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local == "id" {
				present[strings.ToUpper(strings.TrimSpace(attr.Value))] = true
			}
		}
	}

	var codes []string
	for _, code := range InteractiveCountries {
		if present[code] {
			codes = append(codes, code)
		}
	}
	return &Map{raw: raw, codes: codes}
}

// SVG returns the raw map document.
func (m *Map) SVG() []byte {
	return m.raw
}

// Countries returns the bound interactive country codes.
func (m *Map) Countries() []string {
	out := make([]string, len(m.codes))
	copy(out, m.codes)
	return out
}

// Interactive reports whether a country code is bound on this map.
func (m *Map) Interactive(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range m.codes {
		if c == code {
			return true
		}
	}
	return false
}
