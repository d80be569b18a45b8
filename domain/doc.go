// Package domain holds the value types shared by the catalogue, the routing
// graph builder and the map renderer.
//
// Cross references between entities are integer ids, never pointers: a Bus
// lists the ids of the stops it visits and a StopPair keys a road distance by
// the ids of its two stops. Ids are dense, zero based and assigned in
// insertion order by the catalogue.
package domain
