// Package svg is a minimal SVG 1.1 writer: circles, polylines and text with
// the presentation attributes the map renderer needs.
//
// Objects are plain structs. Zero-valued presentation fields are omitted
// from the output, so only what was set is written:
//
//	var doc svg.Document
//	doc.Add(svg.Circle{Center: svg.Point{X: 20, Y: 20}, Radius: 5, PathProps: svg.PathProps{Fill: svg.NamedColor("white")}})
//	out := doc.Render()
package svg
