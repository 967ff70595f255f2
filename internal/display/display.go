// Package display hands rendered viewers to whatever shows them: a writer,
// a file on disk or a notebook kernel reading MIME bundles.
package display

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/yildizm/molview/internal/molerr"
)

// Display consumes rendered viewer HTML
type Display interface {
	Display(html string) error
}

// Func adapts a function to Display
type Func func(html string) error

// Display calls f
func (f Func) Display(html string) error {
	return f(html)
}

// WriterDisplay writes the HTML as-is
type WriterDisplay struct {
	W io.Writer
}

// NewWriter returns a display writing to w
func NewWriter(w io.Writer) *WriterDisplay {
	return &WriterDisplay{W: w}
}

func (d *WriterDisplay) Display(html string) error {
	if _, err := io.WriteString(d.W, html); err != nil {
		return molerr.Wrap(molerr.ErrTypeInvalidArgument, "writer", "failed to write viewer", err)
	}
	return nil
}

// FileDisplay writes the HTML to Path, replacing any previous render
type FileDisplay struct {
	Path string
}

// NewFile returns a display writing to path
func NewFile(path string) *FileDisplay {
	return &FileDisplay{Path: path}
}

func (d *FileDisplay) Display(html string) error {
	if dir := filepath.Dir(d.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return molerr.Wrap(molerr.ErrTypeInvalidArgument, d.Path, "failed to create output directory", err)
		}
	}
	if err := os.WriteFile(d.Path, []byte(html), 0644); err != nil {
		return molerr.Wrap(molerr.ErrTypeInvalidArgument, d.Path, "failed to write viewer file", err)
	}
	return nil
}

// Bundle is a Jupyter display_data message content
type Bundle struct {
	Data     map[string]string      `json:"data"`
	Metadata map[string]interface{} `json:"metadata"`
}

// MIMEDisplay emits one JSON display_data bundle per line, the form Go
// notebook kernels forward to the frontend
type MIMEDisplay struct {
	W io.Writer
}

// NewMIME returns a MIME bundle display writing to w
func NewMIME(w io.Writer) *MIMEDisplay {
	return &MIMEDisplay{W: w}
}

func (d *MIMEDisplay) Display(html string) error {
	bundle := Bundle{
		Data:     map[string]string{"text/html": html},
		Metadata: map[string]interface{}{},
	}
	enc := json.NewEncoder(d.W)
	if err := enc.Encode(bundle); err != nil {
		return molerr.Wrap(molerr.ErrTypeInvalidArgument, "mime", "failed to encode display bundle", err)
	}
	return nil
}
