// Package glyph defines the symbols the CLI prints for folders and items.
package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 6)

	g = append(g, Glyph{
		Key:     "/",
		Symbol:  "▸",
		Meaning: "folder",
	}, Glyph{
		Key:     "o",
		Symbol:  "○",
		Meaning: "incomplete",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "complete",
	}, Glyph{
		Key:     "#",
		Symbol:  "#",
		Meaning: "count",
	}, Glyph{
		Key:     "~",
		Symbol:  "≈",
		Meaning: "measurement",
	}, Glyph{
		Key:     "-",
		Symbol:  "⁃",
		Meaning: "text",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Mark indexes into DefaultGlyphs.
type Mark int

const (
	Folder Mark = iota
	Incomplete
	Complete
	Count
	Measurement
	Text
)

func (m Mark) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Mark) String() string {
	return m.Glyph().String()
}
