// Package server exposes a loaded transport base over HTTP.
//
// Routes:
//
//	GET /api/health               status and base size
//	GET /api/stops/{name}         buses through a stop
//	GET /api/buses/{name}         route statistics of a bus
//	GET /api/routes?from=&to=     fastest itinerary between two stops
//	GET /api/map                  SVG map of the network
//
// JSON answers use the same shapes as stat request responses; the optional
// id query parameter is echoed as request_id. Unknown stops, buses and
// unreachable destinations answer 404 with {"error_message": "not found"}.
package server
