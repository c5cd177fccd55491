package feature

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
)

// Properties maps attribute names to their values. Reading an absent key yields a missing value.
type Properties map[string]Value

func NewProperties() Properties {
	return Properties{}
}

// PropertiesOf converts a plain property map, e.g. one decoded from GeoJSON, into Properties. A nil map stays nil.
func PropertiesOf(raw map[string]any) Properties {
	if raw == nil {
		return nil
	}

	properties := make(Properties, len(raw))
	for key, value := range raw {
		properties[key] = ValueOf(value)
	}
	return properties
}

func (p Properties) Get(key string) Value {
	if p == nil {
		return Missing()
	}
	return p[key]
}

func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p Properties) Set(key string, value Value) {
	p[key] = value
}

// Raw returns the plain Go representation of all properties. Missing values are kept as nil entries.
func (p Properties) Raw() map[string]any {
	raw := make(map[string]any, len(p))
	for key, value := range p {
		raw[key] = value.Interface()
	}
	return raw
}

type PointFeature struct {
	ID         any
	Geometry   orb.Point
	Properties Properties
}

func NewPointFeature(point orb.Point, properties Properties) *PointFeature {
	return &PointFeature{
		Geometry:   point,
		Properties: properties,
	}
}

func (f *PointFeature) Print() {
	if !sigolo.ShouldLogTrace() {
		return
	}

	sigolo.Tracef("PointFeature:")
	sigolo.Tracef("  id=%v", f.ID)
	sigolo.Tracef("  coordinate=%v", f.Geometry)
	sigolo.Tracef("  properties=%v", f.Properties)
}

type PolygonFeature struct {
	ID any

	// Either an orb.Polygon or an orb.MultiPolygon.
	Geometry orb.Geometry

	// May be nil until an aggregation writes the first value.
	Properties Properties
}

func NewPolygonFeature(geometry orb.Geometry, properties Properties) *PolygonFeature {
	return &PolygonFeature{
		Geometry:   geometry,
		Properties: properties,
	}
}

func (f *PolygonFeature) Print() {
	if !sigolo.ShouldLogTrace() {
		return
	}

	sigolo.Tracef("PolygonFeature:")
	sigolo.Tracef("  id=%v", f.ID)
	sigolo.Tracef("  geometry=%T", f.Geometry)
	sigolo.Tracef("  properties=%v", f.Properties)
}

type PointCollection struct {
	Features []*PointFeature
}

func NewPointCollection(features ...*PointFeature) *PointCollection {
	return &PointCollection{Features: features}
}

func (c *PointCollection) Len() int {
	return len(c.Features)
}

type PolygonCollection struct {
	Features []*PolygonFeature
}

func NewPolygonCollection(features ...*PolygonFeature) *PolygonCollection {
	return &PolygonCollection{Features: features}
}

func (c *PolygonCollection) Len() int {
	return len(c.Features)
}
