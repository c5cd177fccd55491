package aggregation

import (
	"geomax/feature"
	"geomax/geometry"
	"geomax/stats"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"time"
)

// ErrInvalidArgument is wrapped by all errors caused by unusable arguments. No polygon has been modified when such an
// error is returned.
var ErrInvalidArgument = errors.New("invalid argument")

type Aggregator struct {
	containment geometry.Containment
	reducer     stats.Reducer
}

func NewAggregator(containment geometry.Containment, reducer stats.Reducer) *Aggregator {
	return &Aggregator{
		containment: containment,
		reducer:     reducer,
	}
}

// AggregateMax stores the maximum of the numeric inField values of all points within each polygon under outField on
// that polygon. Polygons without any numeric value get a missing value. The given polygon collection is modified in
// place and returned.
func AggregateMax(polygons *feature.PolygonCollection, points *feature.PointCollection, inField string, outField string) (*feature.PolygonCollection, error) {
	return NewAggregator(geometry.NewPlanarContainment(), stats.MaxReducer).Aggregate(polygons, points, inField, outField)
}

func (a *Aggregator) Aggregate(polygons *feature.PolygonCollection, points *feature.PointCollection, inField string, outField string) (*feature.PolygonCollection, error) {
	err := validate(polygons, points, inField, outField)
	if err != nil {
		return nil, err
	}
	if a.containment == nil || a.reducer == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "Aggregator needs a containment test and a reducer")
	}

	sigolo.Debugf("Aggregate '%s' of %d points into '%s' of %d polygons using '%s'", inField, points.Len(), outField, polygons.Len(), a.reducer.Name())
	aggregationStartTime := time.Now()

	for _, polygon := range polygons.Features {
		if polygon.Properties == nil {
			polygon.Properties = feature.NewProperties()
		}

		values := a.collectValues(polygon, points, inField)
		result := a.reducer.Reduce(values)

		if sigolo.ShouldLogTrace() {
			sigolo.Tracef("Polygon %v contains %d points, %s=%s", polygon.ID, len(values), outField, result.String())
		}

		polygon.Properties.Set(outField, result)
	}

	sigolo.Debugf("Aggregated %d polygons in %s", polygons.Len(), time.Since(aggregationStartTime))

	return polygons, nil
}

// collectValues returns the inField value of every point within the polygon. Points without that field contribute a
// missing value.
func (a *Aggregator) collectValues(polygon *feature.PolygonFeature, points *feature.PointCollection, inField string) []feature.Value {
	var values []feature.Value
	for _, point := range points.Features {
		if a.containment.Contains(point.Geometry, polygon.Geometry) {
			values = append(values, point.Properties.Get(inField))
		}
	}
	return values
}

func validate(polygons *feature.PolygonCollection, points *feature.PointCollection, inField string, outField string) error {
	if polygons == nil {
		return errors.Wrap(ErrInvalidArgument, "Polygon collection must not be nil")
	}
	if points == nil {
		return errors.Wrap(ErrInvalidArgument, "Point collection must not be nil")
	}
	if inField == "" {
		return errors.Wrap(ErrInvalidArgument, "Input field name must not be empty")
	}
	if outField == "" {
		return errors.Wrap(ErrInvalidArgument, "Output field name must not be empty")
	}

	for i, polygon := range polygons.Features {
		if polygon == nil {
			return errors.Wrapf(ErrInvalidArgument, "Polygon feature at index %d is nil", i)
		}
	}
	for i, point := range points.Features {
		if point == nil {
			return errors.Wrapf(ErrInvalidArgument, "Point feature at index %d is nil", i)
		}
	}

	return nil
}
