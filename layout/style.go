package layout

import "fmt"

// Color is an RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

var (
	Black = Color{A: 0xFF}
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Hex returns the color as "#rrggbb" ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IsZero returns true for the fully transparent zero value.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Style is the visual decoration of a Container.
// The zero value draws nothing.
type Style struct {
	BorderWidth  float64
	BorderRadius float64
	BorderColor  Color
}

// HasBorder returns true if the style draws a visible border.
// nil is a valid value and has no border.
func (s *Style) HasBorder() bool {
	return s != nil && s.BorderWidth > 0
}

func (s *Style) String() string {
	if s == nil {
		return "Style{}"
	}
	return fmt.Sprintf("Style{BorderWidth: %g, BorderRadius: %g, BorderColor: %s}", s.BorderWidth, s.BorderRadius, s.BorderColor.Hex())
}
