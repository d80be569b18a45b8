// Package geo provides the coordinate type used by stops and the
// great-circle distance between two coordinates.
//
// Distances are returned in meters on a sphere of radius EarthRadius.
// Identical coordinates are always exactly 0 meters apart.
package geo
