/*
Package requests is the JSON boundary of the transport catalogue.

It reads request documents, feeds base requests into a catalogue, keeps the
per-process state (catalogue, settings, lazily built planner) in a Transport
and answers stat requests with JSON responses.

A request document looks like:

	{
	  "base_requests": [
	    {"type": "Stop", "name": "A", "latitude": 55.6, "longitude": 37.2, "road_distances": {"B": 3900}},
	    {"type": "Bus", "name": "750", "stops": ["A", "B"], "is_roundtrip": false}
	  ],
	  "routing_settings": {"bus_velocity": 40, "bus_wait_time": 6},
	  "render_settings": {"width": 1200, "height": 1200, "color_palette": ["green", [255, 160, 0]]},
	  "serialization_settings": {"file": "transport_catalogue.db"},
	  "stat_requests": [{"id": 1, "type": "Bus", "name": "750"}]
	}

MakeBase ingests base_requests and writes a snapshot; ProcessRequests loads
that snapshot and answers stat_requests. Requests naming unknown stops, buses
or unreachable destinations are answered with {"error_message": "not found"}.
*/
package requests
