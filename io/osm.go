package io

import (
	"context"
	"geomax/feature"
	"geomax/util"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
	"io"
	"os"
	"strings"
	"time"
)

const OsmIdProperty = "@osm_id"

type OsmNodeHandler interface {
	Name() string
	HandleNode(node *osm.Node) error
}

type OsmReader struct {
	nodeCount int
}

func NewOsmReader() *OsmReader {
	return &OsmReader{}
}

// Read passes all nodes of the given .osm or .pbf file to the handler. Ways and relations are ignored.
func (r *OsmReader) Read(filename string, handler OsmNodeHandler) error {
	if !strings.HasSuffix(filename, ".osm") && !strings.HasSuffix(filename, ".pbf") {
		return errors.Errorf("Input file %s must be an .osm or .pbf file", filename)
	}

	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "Unable to open OSM input file %s", filename)
	}
	defer file.Close()

	var scanner osm.Scanner
	if strings.HasSuffix(filename, ".osm") {
		scanner = osmxml.New(context.Background(), file)
	} else {
		scanner = osmpbf.New(context.Background(), file, 1)
	}

	return r.read(scanner, handler)
}

// ReadXml passes all nodes of the OSM-XML data to the handler.
func (r *OsmReader) ReadXml(reader io.Reader, handler OsmNodeHandler) error {
	return r.read(osmxml.New(context.Background(), reader), handler)
}

func (r *OsmReader) read(scanner osm.Scanner, handler OsmNodeHandler) error {
	sigolo.Debug("Start processing nodes")
	readStartTime := time.Now()

	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}

		err := handler.HandleNode(node)
		if err != nil {
			scanner.Close()
			return errors.Wrapf(err, "Handling node %d using handler '%s' failed", node.ID, handler.Name())
		}
		r.nodeCount++
	}

	err := scanner.Err()
	if err != nil {
		scanner.Close()
		return errors.Wrap(err, "Unable to scan OSM data")
	}

	err = scanner.Close()
	if err != nil {
		return errors.Wrapf(err, "Unable to close OSM scanner")
	}

	sigolo.Debugf("Processed %d nodes in %s", r.nodeCount, time.Since(readStartTime))
	return nil
}

// pointCollector turns tagged nodes into point features. Numeric tag values become numbers, all other values stay
// strings.
type pointCollector struct {
	collection *feature.PointCollection
}

func (c *pointCollector) Name() string {
	return "point-collector"
}

func (c *pointCollector) HandleNode(node *osm.Node) error {
	if len(node.Tags) == 0 {
		return nil
	}

	c.collection.Features = append(c.collection.Features, NodeToPointFeature(node))
	return nil
}

func NodeToPointFeature(node *osm.Node) *feature.PointFeature {
	properties := feature.NewProperties()
	properties.Set(OsmIdProperty, feature.Number(float64(node.ID)))
	for _, tag := range node.Tags {
		properties.Set(tag.Key, tagValue(tag.Value))
	}

	pointFeature := feature.NewPointFeature(node.Point(), properties)
	pointFeature.ID = int64(node.ID)
	return pointFeature
}

func tagValue(value string) feature.Value {
	if number, ok := util.ParseNumber(value); ok {
		return feature.Number(number)
	}
	return feature.String(value)
}

// ReadOsmPoints reads all tagged nodes of an .osm or .pbf file as point features.
func ReadOsmPoints(filename string) (*feature.PointCollection, error) {
	collector := &pointCollector{collection: feature.NewPointCollection()}

	err := NewOsmReader().Read(filename, collector)
	if err != nil {
		return nil, err
	}

	sigolo.Debugf("Read %d point features from OSM file %s", collector.collection.Len(), filename)
	return collector.collection, nil
}

// ReadOsmXmlPoints reads all tagged nodes of the OSM-XML data as point features.
func ReadOsmXmlPoints(reader io.Reader) (*feature.PointCollection, error) {
	collector := &pointCollector{collection: feature.NewPointCollection()}

	err := NewOsmReader().ReadXml(reader, collector)
	if err != nil {
		return nil, err
	}

	return collector.collection, nil
}
