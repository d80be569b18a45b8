package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_String(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{name: "none", color: NoColor(), want: "none"},
		{name: "named", color: NamedColor("green"), want: "green"},
		{name: "rgb", color: RGB(255, 16, 12), want: "rgb(255,16,12)"},
		{name: "rgba", color: RGBA(255, 200, 23, 0.85), want: "rgba(255,200,23,0.85)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.String())
		})
	}
	assert.False(t, Color{}.IsSet())
}

func TestObjects(t *testing.T) {
	tests := []struct {
		name string
		obj  Object
		want string
	}{
		{
			name: "circle with fill",
			obj:  Circle{Center: Point{X: 20, Y: 20.5}, Radius: 5, PathProps: PathProps{Fill: NamedColor("white")}},
			want: `<circle cx="20" cy="20.5" r="5" fill="white"/>`,
		},
		{
			name: "polyline with every path attribute",
			obj: Polyline{
				Points: []Point{{X: 1, Y: 2}, {X: 3.25, Y: 4}},
				PathProps: PathProps{
					Fill:        NoColor(),
					Stroke:      RGB(1, 2, 3),
					StrokeWidth: 14,
					LineCap:     LineCapRound,
					LineJoin:    LineJoinRound,
				},
			},
			want: `<polyline points="1,2 3.25,4" fill="none" stroke="rgb(1,2,3)" stroke-width="14" stroke-linecap="round" stroke-linejoin="round"/>`,
		},
		{
			name: "empty polyline",
			obj:  Polyline{},
			want: `<polyline points=""/>`,
		},
		{
			name: "text is escaped",
			obj: Text{
				Position:   Point{X: 10, Y: 20},
				Offset:     Point{X: 7, Y: -3},
				FontSize:   20,
				FontFamily: "Verdana",
				FontWeight: "bold",
				Data:       `"Tom & Jerry's" <bus>`,
				PathProps:  PathProps{Fill: NamedColor("black")},
			},
			want: `<text fill="black" x="10" y="20" dx="7" dy="-3" font-size="20" font-family="Verdana" font-weight="bold">&quot;Tom &amp; Jerry&apos;s&quot; &lt;bus&gt;</text>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			tt.obj.writeSVG(&b)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestDocument_Render(t *testing.T) {
	var doc Document
	doc.Add(Circle{Center: Point{X: 1, Y: 1}, Radius: 2})
	doc.Add(Text{Data: "A", FontSize: 1})

	want := "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n" +
		"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n" +
		"  <circle cx=\"1\" cy=\"1\" r=\"2\"/>\n" +
		"  <text x=\"0\" y=\"0\" dx=\"0\" dy=\"0\" font-size=\"1\">A</text>\n" +
		"</svg>"
	assert.Equal(t, want, string(doc.Render()))
	assert.Equal(t, 2, doc.Len())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "99.2395", formatNumber(99.23951234))
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "-3.5", formatNumber(-3.5))
}
