/*
Package renderer draws the bus network as an SVG map.

Coordinates are projected linearly: the bounding box of every stop a bus
visits is scaled to fit the canvas minus padding, keeping the aspect ratio.

The map is drawn in four layers, bottom to top:

  - bus lines, one polyline per bus in name order, colored from the palette
  - bus names at the route ends, each over a wide underlayer copy
  - stop circles, in stop name order
  - stop names, each over an underlayer copy

Buses without stops are not drawn and do not take a palette color.
*/
package renderer
