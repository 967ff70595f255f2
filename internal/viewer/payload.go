package viewer

import (
	"encoding/json"

	"github.com/yildizm/molview/internal/colormode"
	"github.com/yildizm/molview/internal/logger"
	"github.com/yildizm/molview/internal/molerr"
	"github.com/yildizm/molview/internal/render"
)

// Payload is the initialization state handed to the page
type Payload struct {
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Rows     int              `json:"rows"`
	Cols     int              `json:"cols"`
	Grid     bool             `json:"grid"`
	Panel    bool             `json:"panel"`
	Layout   string           `json:"layout"`
	Sessions []SessionPayload `json:"sessions"`
}

// SessionPayload is one cell of the payload
type SessionPayload struct {
	Row    int             `json:"row"`
	Col    int             `json:"col"`
	Style  StyleDescriptor `json:"style"`
	Camera Camera          `json:"camera"`
	Models []ModelPayload  `json:"models"`
}

// ModelPayload is one structure with its resolved coloring
type ModelPayload struct {
	Name     string             `json:"name"`
	Format   string             `json:"format"`
	Data     string             `json:"data"`
	KeepH    bool               `json:"keepH"`
	Coloring colormode.Coloring `json:"coloring"`
}

// Payload snapshots the current state. The same state always produces the
// same payload.
func (v *Viewer) Payload() *Payload {
	g := v.Grid()
	p := &Payload{
		Width:    v.opts.Width,
		Height:   v.opts.Height,
		Rows:     g.Rows,
		Cols:     g.Cols,
		Grid:     v.grid != nil,
		Panel:    v.opts.Panel,
		Layout:   v.layout,
		Sessions: make([]SessionPayload, 0, len(v.sessions)),
	}

	for _, s := range v.sessions {
		sp := SessionPayload{
			Row:    s.Row,
			Col:    s.Col,
			Style:  s.style,
			Camera: s.camera,
			Models: make([]ModelPayload, 0, len(s.models)),
		}
		for _, m := range s.models {
			sp.Models = append(sp.Models, ModelPayload{
				Name:     m.Name,
				Format:   string(m.Structure.Format),
				Data:     m.Structure.Data,
				KeepH:    m.Structure.KeepH,
				Coloring: s.style.Color.Colorize(m.summary),
			})
		}
		p.Sessions = append(p.Sessions, sp)
	}
	return p
}

// PayloadJSON encodes Payload
func (v *Viewer) PayloadJSON() ([]byte, error) {
	data, err := json.Marshal(v.Payload())
	if err != nil {
		return nil, molerr.Wrap(molerr.ErrTypeInvalidArgument, "payload", "failed to encode viewer payload", err)
	}
	return data, nil
}

// HTML renders the standalone Molstar page
func (v *Viewer) HTML() (string, error) {
	data, err := v.PayloadJSON()
	if err != nil {
		return "", err
	}
	return v.page(data)
}

func (v *Viewer) page(payload []byte) (string, error) {
	g := v.Grid()
	return render.HTML(render.Page{
		Width:         v.opts.Width,
		Height:        v.opts.Height,
		Rows:          g.Rows,
		Cols:          g.Cols,
		Panel:         v.opts.Panel,
		Grid:          v.grid != nil,
		ShowSequence:  v.opts.ShowSequence,
		ShowAnimation: v.opts.ShowAnimation,
		Payload:       payload,
	}, v.opts.Assets)
}

// IFrame renders the page wrapped in its notebook iframe
func (v *Viewer) IFrame() (string, error) {
	data, err := v.PayloadJSON()
	if err != nil {
		return "", err
	}
	page, err := v.page(data)
	if err != nil {
		return "", err
	}
	width := render.Page{Width: v.opts.Width, Panel: v.opts.Panel, Grid: v.grid != nil}.TotalWidth()
	return render.IFrame(page, render.ElementID(data), width, v.opts.Height), nil
}

// Show renders the current state and hands it to the display. It returns
// once the display has accepted the markup; calling it again re-renders
// from the current state.
func (v *Viewer) Show() error {
	for _, s := range v.sessions {
		for _, m := range s.models {
			if c := s.style.Color.Colorize(m.summary); c.Fallback {
				v.log.Warn("no pLDDT confidence values; coloring by element",
					logger.F("model", m.Name), logger.F("row", s.Row), logger.F("col", s.Col))
			}
		}
	}

	frame, err := v.IFrame()
	if err != nil {
		return err
	}
	if err := v.opts.Display.Display(frame); err != nil {
		return err
	}
	v.log.Debug("viewer shown", logger.Count(len(v.Models())), logger.F("bytes", len(frame)))
	return nil
}
