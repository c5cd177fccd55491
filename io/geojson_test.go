package io

import (
	"bytes"
	"geomax/feature"
	"geomax/util"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"strings"
	"testing"
)

const polygonsGeoJson = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [10, 0], [10, 10], [0, 10], [0, 0]]]},
      "properties": {"name": "A"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "MultiPolygon", "coordinates": [[[[20, 20], [30, 20], [30, 30], [20, 30], [20, 20]]]]},
      "properties": null
    }
  ]
}`

const pointsGeoJson = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 1]}, "properties": {"population": 200}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [9, 9]}, "properties": {"population": "600"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [20, 20]}, "properties": {}}
  ]
}`

func TestReadPolygons(t *testing.T) {
	// Act
	collection, err := ReadPolygons(strings.NewReader(polygonsGeoJson))

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 2, collection.Len())

	_, isPolygon := collection.Features[0].Geometry.(orb.Polygon)
	util.AssertTrue(t, isPolygon)
	util.AssertEqual(t, feature.String("A"), collection.Features[0].Properties.Get("name"))

	_, isMultiPolygon := collection.Features[1].Geometry.(orb.MultiPolygon)
	util.AssertTrue(t, isMultiPolygon)
	util.AssertEqual(t, 0, len(collection.Features[1].Properties))
}

func TestReadPolygons_wrongGeometryType(t *testing.T) {
	// Act
	collection, err := ReadPolygons(strings.NewReader(pointsGeoJson))

	// Assert
	util.AssertNil(t, collection)
	util.AssertError(t, "Feature 0 has geometry type Point but Polygon or MultiPolygon expected", err)
}

func TestReadPolygons_invalidJson(t *testing.T) {
	// Act
	collection, err := ReadPolygons(strings.NewReader("{"))

	// Assert
	util.AssertNil(t, collection)
	util.AssertNotNil(t, err)
}

func TestReadPoints(t *testing.T) {
	// Act
	collection, err := ReadPoints(strings.NewReader(pointsGeoJson))

	// Assert
	util.AssertNil(t, err)
	util.AssertEqual(t, 3, collection.Len())
	util.AssertEqual(t, orb.Point{9, 9}, collection.Features[1].Geometry)
	util.AssertEqual(t, feature.Number(200), collection.Features[0].Properties.Get("population"))
	util.AssertEqual(t, feature.String("600"), collection.Features[1].Properties.Get("population"))
	util.AssertTrue(t, collection.Features[2].Properties.Get("population").IsMissing())
}

func TestReadPoints_wrongGeometryType(t *testing.T) {
	// Act
	collection, err := ReadPoints(strings.NewReader(polygonsGeoJson))

	// Assert
	util.AssertNil(t, collection)
	util.AssertError(t, "Feature 0 has geometry type Polygon but Point expected", err)
}

func TestWritePolygons(t *testing.T) {
	// Arrange
	properties := feature.NewProperties()
	properties.Set("max", feature.Number(600))
	properties.Set("min", feature.Missing())
	polygon := feature.NewPolygonFeature(orb.Polygon{orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, properties)
	collection := feature.NewPolygonCollection(polygon)

	buffer := bytes.NewBuffer([]byte{})

	// Act
	err := WritePolygons(collection, buffer)

	// Assert
	util.AssertNil(t, err)

	written, err := geojson.UnmarshalFeatureCollection(buffer.Bytes())
	util.AssertNil(t, err)
	util.AssertEqual(t, 1, len(written.Features))
	util.AssertEqual(t, 600.0, written.Features[0].Properties["max"])

	minValue, hasMin := written.Features[0].Properties["min"]
	util.AssertTrue(t, hasMin)
	util.AssertNil(t, minValue)
	util.AssertContains(t, `"min":null`, buffer.String())
}
