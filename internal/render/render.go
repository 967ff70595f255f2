// Package render turns a viewer payload into the self-contained Molstar
// page and the iframe that embeds it in a notebook cell.
package render

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"html"
	"html/template"

	"github.com/yildizm/molview/internal/molerr"
)

// Default Molstar assets
const (
	DefaultScriptURL = "https://cdn.jsdelivr.net/npm/molstar@latest/build/viewer/molstar.js"
	DefaultStyleURL  = "https://cdn.jsdelivr.net/npm/molstar@latest/build/viewer/molstar.css"

	// PanelWidth is reserved beside the viewer when the control panel can show
	PanelWidth = 280
)

var page = template.Must(template.New("molview").Parse(pageTemplate))

// Assets locates the Molstar bundle
type Assets struct {
	ScriptURL string `yaml:"molstar_js" json:"molstar_js"`
	StyleURL  string `yaml:"molstar_css" json:"molstar_css"`
}

// DefaultAssets returns the jsDelivr Molstar build
func DefaultAssets() Assets {
	return Assets{ScriptURL: DefaultScriptURL, StyleURL: DefaultStyleURL}
}

// Page describes one rendered viewer
type Page struct {
	Title  string
	Width  int
	Height int
	Rows   int
	Cols   int

	// Panel is true when the control panel is shown
	Panel bool

	// Grid is true for viewergrid layouts; the panel width is reserved for them too
	Grid bool

	ShowSequence  bool
	ShowAnimation bool

	// Payload is the JSON session snapshot
	Payload []byte
}

// TotalWidth is the viewer width plus the panel allowance
func (p Page) TotalWidth() int {
	if p.Panel || p.Grid {
		return p.Width + PanelWidth
	}
	return p.Width
}

type pageData struct {
	Title         string
	Width         int
	Height        int
	TotalWidth    int
	Rows          int
	Cols          int
	ShowPanel     bool
	ShowSequence  bool
	ShowAnimation bool
	ScriptURL     string
	StyleURL      string
	Payload       template.JS
}

// HTML renders the full page
func HTML(p Page, assets Assets) (string, error) {
	if assets.ScriptURL == "" || assets.StyleURL == "" {
		assets = DefaultAssets()
	}
	if p.Rows <= 0 {
		p.Rows = 1
	}
	if p.Cols <= 0 {
		p.Cols = 1
	}
	title := p.Title
	if title == "" {
		title = "molview"
	}

	data := pageData{
		Title:         title,
		Width:         p.Width,
		Height:        p.Height,
		TotalWidth:    p.TotalWidth(),
		Rows:          p.Rows,
		Cols:          p.Cols,
		ShowPanel:     p.Panel || p.Grid,
		ShowSequence:  p.ShowSequence,
		ShowAnimation: p.ShowAnimation,
		ScriptURL:     assets.ScriptURL,
		StyleURL:      assets.StyleURL,
		// payload comes from json.Marshal, which escapes <, > and &
		Payload: template.JS(p.Payload),
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return "", molerr.Wrap(molerr.ErrTypeInvalidArgument, "page", "failed to render viewer page", err)
	}
	return buf.String(), nil
}

// ElementID derives a stable element id from the payload, so rendering the
// same state twice yields the same markup
func ElementID(payload []byte) string {
	h := fnv.New32a()
	_, _ = h.Write(payload)
	return fmt.Sprintf("molview-%08x", h.Sum32())
}

// IFrame wraps a page in an iframe through srcdoc
func IFrame(page string, id string, width, height int) string {
	return fmt.Sprintf(iframeTemplate, id, width, height, html.EscapeString(page))
}
