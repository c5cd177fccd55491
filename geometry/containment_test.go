package geometry

import (
	"geomax/util"
	"github.com/paulmach/orb"
	"testing"
)

var (
	square = orb.Polygon{
		orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
	}

	squareWithHole = orb.Polygon{
		orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		orb.Ring{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}},
	}
)

func TestPlanarContainment_polygon(t *testing.T) {
	// Arrange
	containment := NewPlanarContainment()

	// Act & Assert
	util.AssertTrue(t, containment.Contains(orb.Point{1, 1}, square))
	util.AssertTrue(t, containment.Contains(orb.Point{9, 9}, square))
	util.AssertFalse(t, containment.Contains(orb.Point{20, 20}, square))
	util.AssertFalse(t, containment.Contains(orb.Point{-0.1, 5}, square))
}

func TestPlanarContainment_boundaryIsInside(t *testing.T) {
	// Arrange
	containment := NewPlanarContainment()

	// Act & Assert
	util.AssertTrue(t, containment.Contains(orb.Point{0, 5}, square))
	util.AssertTrue(t, containment.Contains(orb.Point{10, 10}, square))
}

func TestPlanarContainment_hole(t *testing.T) {
	// Arrange
	containment := NewPlanarContainment()

	// Act & Assert
	util.AssertTrue(t, containment.Contains(orb.Point{1, 1}, squareWithHole))
	util.AssertFalse(t, containment.Contains(orb.Point{5, 5}, squareWithHole))
}

func TestPlanarContainment_multiPolygon(t *testing.T) {
	// Arrange
	containment := NewPlanarContainment()
	other := orb.Polygon{
		orb.Ring{{20, 20}, {30, 20}, {30, 30}, {20, 30}, {20, 20}},
	}
	multiPolygon := orb.MultiPolygon{square, other}

	// Act & Assert
	util.AssertTrue(t, containment.Contains(orb.Point{1, 1}, multiPolygon))
	util.AssertTrue(t, containment.Contains(orb.Point{25, 25}, multiPolygon))
	util.AssertFalse(t, containment.Contains(orb.Point{15, 15}, multiPolygon))
}

func TestPlanarContainment_unsupportedOrEmptyGeometry(t *testing.T) {
	// Arrange
	containment := NewPlanarContainment()

	// Act & Assert
	util.AssertFalse(t, containment.Contains(orb.Point{1, 1}, nil))
	util.AssertFalse(t, containment.Contains(orb.Point{1, 1}, orb.Polygon{}))
	util.AssertFalse(t, containment.Contains(orb.Point{1, 1}, orb.LineString{{0, 0}, {2, 2}}))
	util.AssertFalse(t, containment.Contains(orb.Point{1, 1}, orb.Point{1, 1}))
}
