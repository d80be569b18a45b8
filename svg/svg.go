package svg

import (
	"strconv"
	"strings"
)

// Point is a position on the canvas; y grows downwards.
type Point struct {
	X float64
	Y float64
}

type LineCap int

const (
	LineCapUnset LineCap = iota
	LineCapButt
	LineCapRound
	LineCapSquare
)

func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return ""
}

type LineJoin int

const (
	LineJoinUnset LineJoin = iota
	LineJoinArcs
	LineJoinBevel
	LineJoinMiter
	LineJoinMiterClip
	LineJoinRound
)

func (j LineJoin) String() string {
	switch j {
	case LineJoinArcs:
		return "arcs"
	case LineJoinBevel:
		return "bevel"
	case LineJoinMiter:
		return "miter"
	case LineJoinMiterClip:
		return "miter-clip"
	case LineJoinRound:
		return "round"
	}
	return ""
}

// PathProps holds the presentation attributes shared by every shape.
type PathProps struct {
	Fill        Color
	Stroke      Color
	StrokeWidth float64
	LineCap     LineCap
	LineJoin    LineJoin
}

func (p PathProps) write(b *strings.Builder) {
	if p.Fill.IsSet() {
		writeAttr(b, "fill", p.Fill.String())
	}
	if p.Stroke.IsSet() {
		writeAttr(b, "stroke", p.Stroke.String())
	}
	if p.StrokeWidth != 0 {
		writeAttr(b, "stroke-width", formatNumber(p.StrokeWidth))
	}
	if p.LineCap != LineCapUnset {
		writeAttr(b, "stroke-linecap", p.LineCap.String())
	}
	if p.LineJoin != LineJoinUnset {
		writeAttr(b, "stroke-linejoin", p.LineJoin.String())
	}
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString("=\"")
	b.WriteString(value)
	b.WriteString("\"")
}

// Object is a drawable element of a Document.
type Object interface {
	writeSVG(b *strings.Builder)
}

// Circle is a <circle> centered at Center.
type Circle struct {
	Center Point
	Radius float64
	PathProps
}

func (c Circle) writeSVG(b *strings.Builder) {
	b.WriteString("<circle")
	writeAttr(b, "cx", formatNumber(c.Center.X))
	writeAttr(b, "cy", formatNumber(c.Center.Y))
	writeAttr(b, "r", formatNumber(c.Radius))
	c.PathProps.write(b)
	b.WriteString("/>")
}

// Polyline is a <polyline> through Points in order.
type Polyline struct {
	Points []Point
	PathProps
}

func (p Polyline) writeSVG(b *strings.Builder) {
	b.WriteString("<polyline points=\"")
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(formatNumber(pt.X))
		b.WriteString(",")
		b.WriteString(formatNumber(pt.Y))
	}
	b.WriteString("\"")
	p.PathProps.write(b)
	b.WriteString("/>")
}

// Text is a <text> element anchored at Position and shifted by Offset
// (dx, dy). Data is escaped on output. FontFamily and FontWeight are left
// out when empty.
type Text struct {
	Position   Point
	Offset     Point
	FontSize   uint32
	FontFamily string
	FontWeight string
	Data       string
	PathProps
}

func (t Text) writeSVG(b *strings.Builder) {
	b.WriteString("<text")
	t.PathProps.write(b)
	writeAttr(b, "x", formatNumber(t.Position.X))
	writeAttr(b, "y", formatNumber(t.Position.Y))
	writeAttr(b, "dx", formatNumber(t.Offset.X))
	writeAttr(b, "dy", formatNumber(t.Offset.Y))
	writeAttr(b, "font-size", strconv.FormatUint(uint64(t.FontSize), 10))
	if t.FontFamily != "" {
		writeAttr(b, "font-family", xmlEscape(t.FontFamily))
	}
	if t.FontWeight != "" {
		writeAttr(b, "font-weight", xmlEscape(t.FontWeight))
	}
	b.WriteString(">")
	b.WriteString(xmlEscape(t.Data))
	b.WriteString("</text>")
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string { return escaper.Replace(s) }

// Document is an ordered list of objects; later objects are drawn on top.
type Document struct {
	objects []Object
}

func (d *Document) Add(obj Object) { d.objects = append(d.objects, obj) }

func (d *Document) Len() int { return len(d.objects) }

// Render serializes the document, one indented object per line.
func (d *Document) Render() []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n")
	b.WriteString("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n")
	for _, obj := range d.objects {
		b.WriteString("  ")
		obj.writeSVG(&b)
		b.WriteString("\n")
	}
	b.WriteString("</svg>")
	return []byte(b.String())
}
