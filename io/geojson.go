package io

import (
	"geomax/feature"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"io"
	"os"
	"time"
)

func ReadPolygonsFile(filename string) (*feature.PolygonCollection, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to open polygon file %s", filename)
	}
	defer file.Close()

	collection, err := ReadPolygons(file)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read polygons from %s", filename)
	}
	return collection, nil
}

// ReadPolygons reads a GeoJSON feature collection whose features all are polygons or multi-polygons.
func ReadPolygons(reader io.Reader) (*feature.PolygonCollection, error) {
	featureCollection, err := readFeatureCollection(reader)
	if err != nil {
		return nil, err
	}
	return PolygonsFromGeoJson(featureCollection)
}

func PolygonsFromGeoJson(featureCollection *geojson.FeatureCollection) (*feature.PolygonCollection, error) {
	if featureCollection == nil {
		return nil, errors.New("Polygon feature collection is missing")
	}

	collection := feature.NewPolygonCollection()
	for i, geoJsonFeature := range featureCollection.Features {
		if geoJsonFeature == nil {
			return nil, errors.Errorf("Feature %d is null", i)
		}

		switch geoJsonFeature.Geometry.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			return nil, errors.Errorf("Feature %d has geometry type %s but Polygon or MultiPolygon expected", i, geometryType(geoJsonFeature.Geometry))
		}

		polygon := feature.NewPolygonFeature(geoJsonFeature.Geometry, feature.PropertiesOf(geoJsonFeature.Properties))
		polygon.ID = geoJsonFeature.ID
		collection.Features = append(collection.Features, polygon)
	}

	sigolo.Debugf("Read %d polygon features", collection.Len())
	return collection, nil
}

func ReadPointsFile(filename string) (*feature.PointCollection, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to open point file %s", filename)
	}
	defer file.Close()

	collection, err := ReadPoints(file)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read points from %s", filename)
	}
	return collection, nil
}

// ReadPoints reads a GeoJSON feature collection whose features all are points.
func ReadPoints(reader io.Reader) (*feature.PointCollection, error) {
	featureCollection, err := readFeatureCollection(reader)
	if err != nil {
		return nil, err
	}
	return PointsFromGeoJson(featureCollection)
}

func PointsFromGeoJson(featureCollection *geojson.FeatureCollection) (*feature.PointCollection, error) {
	if featureCollection == nil {
		return nil, errors.New("Point feature collection is missing")
	}

	collection := feature.NewPointCollection()
	for i, geoJsonFeature := range featureCollection.Features {
		if geoJsonFeature == nil {
			return nil, errors.Errorf("Feature %d is null", i)
		}

		point, ok := geoJsonFeature.Geometry.(orb.Point)
		if !ok {
			return nil, errors.Errorf("Feature %d has geometry type %s but Point expected", i, geometryType(geoJsonFeature.Geometry))
		}

		pointFeature := feature.NewPointFeature(point, feature.PropertiesOf(geoJsonFeature.Properties))
		pointFeature.ID = geoJsonFeature.ID
		collection.Features = append(collection.Features, pointFeature)
	}

	sigolo.Debugf("Read %d point features", collection.Len())
	return collection, nil
}

func WritePolygonsFile(collection *feature.PolygonCollection, filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "Unable to create GeoJSON file %s", filename)
	}

	defer func() {
		closeErr := file.Close()
		if err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "Unable to close file handle for GeoJSON file %s", filename)
		}
	}()

	return WritePolygons(collection, file)
}

// WritePolygons writes the collection as GeoJSON feature collection. Missing property values are written as null.
func WritePolygons(collection *feature.PolygonCollection, writer io.Writer) error {
	sigolo.Info("Write features to GeoJSON")
	writeStartTime := time.Now()

	featureCollection := PolygonsToGeoJson(collection)

	geojsonBytes, err := featureCollection.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "Unable to encode GeoJSON")
	}

	_, err = writer.Write(geojsonBytes)
	if err != nil {
		return errors.Wrap(err, "Unable to write GeoJSON")
	}

	writeDuration := time.Since(writeStartTime)
	sigolo.Infof("Finished writing %d features in %s", collection.Len(), writeDuration)

	return nil
}

func PolygonsToGeoJson(collection *feature.PolygonCollection) *geojson.FeatureCollection {
	featureCollection := geojson.NewFeatureCollection()
	for _, polygon := range collection.Features {
		geoJsonFeature := geojson.NewFeature(polygon.Geometry)
		geoJsonFeature.ID = polygon.ID
		for key, value := range polygon.Properties {
			geoJsonFeature.Properties[key] = value.Interface()
		}
		featureCollection.Append(geoJsonFeature)
	}
	return featureCollection
}

func readFeatureCollection(reader io.Reader) (*geojson.FeatureCollection, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to read GeoJSON input")
	}

	featureCollection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to parse GeoJSON feature collection")
	}
	return featureCollection, nil
}

func geometryType(geometry orb.Geometry) string {
	if geometry == nil {
		return "null"
	}
	return geometry.GeoJSONType()
}
