package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Containment decides whether a point lies within a polygon-like geometry. Implementations must not modify the
// geometries they are given.
type Containment interface {
	Contains(point orb.Point, polygon orb.Geometry) bool
}

// PlanarContainment treats coordinates as planar x/y values. Points on the outer boundary of a polygon are considered
// inside, points within a hole (including its boundary) are outside.
type PlanarContainment struct{}

func NewPlanarContainment() *PlanarContainment {
	return &PlanarContainment{}
}

func (c *PlanarContainment) Contains(point orb.Point, polygon orb.Geometry) bool {
	if polygon == nil {
		return false
	}

	// Cheap rejection before the ring tests. The bound of a polygon is the bound of its outer ring.
	if !polygon.Bound().Contains(point) {
		return false
	}

	switch g := polygon.(type) {
	case orb.Polygon:
		return polygonContains(g, point)
	case orb.MultiPolygon:
		for _, p := range g {
			if polygonContains(p, point) {
				return true
			}
		}
		return false
	case orb.Ring:
		return len(g) != 0 && planar.RingContains(g, point)
	case orb.Bound:
		return true
	}

	return false
}

func polygonContains(polygon orb.Polygon, point orb.Point) bool {
	if len(polygon) == 0 || len(polygon[0]) == 0 {
		return false
	}
	return planar.PolygonContains(polygon, point)
}
