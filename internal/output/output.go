// Package output writes position reports for downstream consumers.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/asterpro/absTouch/internal/touch"
)

// Format names accepted by New.
const (
	FormatText  = "text"
	FormatJSONL = "jsonl"
)

// Sink consumes the positions a session produces.
type Sink interface {
	Write(p touch.Position) error
}

// New returns the sink for a configured format name.
func New(format string, w io.Writer) (Sink, error) {
	switch format {
	case "", FormatText:
		return NewText(w), nil
	case FormatJSONL:
		return NewJSONL(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// Text writes one "x y" pair per line, which is enough for shell
// pipelines and plotting tools.
type Text struct {
	w io.Writer
}

// NewText returns a Sink writing plain coordinate pairs to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// Write prints the position as two fixed-point columns.
func (t *Text) Write(p touch.Position) error {
	_, err := fmt.Fprintf(t.w, "%.5f %.5f\n", p.X, p.Y)
	return err
}

// JSONL writes one JSON object per line.
type JSONL struct {
	enc *json.Encoder
}

// NewJSONL returns a Sink writing JSON lines to w.
func NewJSONL(w io.Writer) *JSONL {
	return &JSONL{enc: json.NewEncoder(w)}
}

type jsonlPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Write encodes the position as one line.
func (j *JSONL) Write(p touch.Position) error {
	return j.enc.Encode(jsonlPosition{X: p.X, Y: p.Y})
}
