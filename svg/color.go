package svg

import (
	"strconv"
	"strings"
)

// ColorKind tells which representation a Color holds.
type ColorKind int

const (
	// ColorUnset leaves the attribute out.
	ColorUnset ColorKind = iota
	// ColorNone renders as "none".
	ColorNone
	ColorNamed
	ColorRGB
	ColorRGBA
)

// Color is an SVG paint. The zero value is unset.
type Color struct {
	Kind    ColorKind
	Name    string
	Red     uint8
	Green   uint8
	Blue    uint8
	Opacity float64
}

func NoColor() Color { return Color{Kind: ColorNone} }

func NamedColor(name string) Color { return Color{Kind: ColorNamed, Name: name} }

func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, Red: r, Green: g, Blue: b} }

func RGBA(r, g, b uint8, opacity float64) Color {
	return Color{Kind: ColorRGBA, Red: r, Green: g, Blue: b, Opacity: opacity}
}

// IsSet reports whether the color is written out.
func (c Color) IsSet() bool { return c.Kind != ColorUnset }

func (c Color) String() string {
	var b strings.Builder
	switch c.Kind {
	case ColorNamed:
		b.WriteString(c.Name)
	case ColorRGB:
		b.WriteString("rgb(")
		writeChannels(&b, c)
		b.WriteString(")")
	case ColorRGBA:
		b.WriteString("rgba(")
		writeChannels(&b, c)
		b.WriteString(",")
		b.WriteString(formatNumber(c.Opacity))
		b.WriteString(")")
	default:
		b.WriteString("none")
	}
	return b.String()
}

func writeChannels(b *strings.Builder, c Color) {
	b.WriteString(strconv.Itoa(int(c.Red)))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(int(c.Green)))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(int(c.Blue)))
}

// formatNumber prints up to six significant digits.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
