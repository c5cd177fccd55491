package job

import (
	"geomax/aggregation"
	"geomax/feature"
	"geomax/geometry"
	ownIo "geomax/io"
	"geomax/stats"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
	"time"
)

const (
	PointsFormatGeoJson = "geojson"
	PointsFormatOsm     = "osm"
)

// Job is a list of aggregations read from a YAML file:
//
//	aggregations:
//	  - polygons: districts.geojson
//	    points: schools.geojson
//	    in_field: students
//	    out_field: max_students
//	    output: districts-max.geojson
type Job struct {
	Aggregations []Aggregation `yaml:"aggregations"`
}

type Aggregation struct {
	Polygons     string `yaml:"polygons"`
	Points       string `yaml:"points"`
	PointsFormat string `yaml:"points_format,omitempty"` // "geojson" (default) or "osm"
	InField      string `yaml:"in_field"`
	OutField     string `yaml:"out_field"`
	Reducer      string `yaml:"reducer,omitempty"` // Defaults to "max"
	Output       string `yaml:"output"`
}

func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read job file %s", path)
	}

	job, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid job file %s", path)
	}
	return job, nil
}

// Parse decodes and validates a YAML job description. Optional fields are set to their defaults.
func Parse(data []byte) (*Job, error) {
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, errors.Wrap(err, "Unable to parse YAML")
	}

	for i := range job.Aggregations {
		if job.Aggregations[i].PointsFormat == "" {
			job.Aggregations[i].PointsFormat = PointsFormatGeoJson
		}
		if job.Aggregations[i].Reducer == "" {
			job.Aggregations[i].Reducer = stats.MaxReducer.Name()
		}
	}

	err := job.Validate()
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (j *Job) Validate() error {
	if len(j.Aggregations) == 0 {
		return errors.New("Job contains no aggregations")
	}

	for i, a := range j.Aggregations {
		err := a.validate()
		if err != nil {
			return errors.Wrapf(err, "Aggregation %d is invalid", i)
		}
	}
	return nil
}

func (a Aggregation) validate() error {
	if a.Polygons == "" {
		return errors.New("'polygons' must be set")
	}
	if a.Points == "" {
		return errors.New("'points' must be set")
	}
	if a.InField == "" {
		return errors.New("'in_field' must be set")
	}
	if a.OutField == "" {
		return errors.New("'out_field' must be set")
	}
	if a.Output == "" {
		return errors.New("'output' must be set")
	}
	if a.PointsFormat != PointsFormatGeoJson && a.PointsFormat != PointsFormatOsm {
		return errors.Errorf("Unknown points format '%s'", a.PointsFormat)
	}

	_, err := stats.ReducerByName(a.Reducer)
	return err
}

// Run executes all aggregations in the given order and stops at the first failing one.
func (j *Job) Run() error {
	sigolo.Infof("Run %d aggregations", len(j.Aggregations))
	jobStartTime := time.Now()

	for i, a := range j.Aggregations {
		sigolo.Infof("Aggregation %d/%d: %s of '%s' into '%s'", i+1, len(j.Aggregations), a.Reducer, a.InField, a.OutField)

		err := a.Run()
		if err != nil {
			return errors.Wrapf(err, "Aggregation %d failed", i)
		}
	}

	sigolo.Infof("Finished job in %s", time.Since(jobStartTime))
	return nil
}

func (a Aggregation) Run() error {
	reducer, err := stats.ReducerByName(a.Reducer)
	if err != nil {
		return err
	}

	polygons, err := ownIo.ReadPolygonsFile(a.Polygons)
	if err != nil {
		return err
	}

	points, err := a.readPoints()
	if err != nil {
		return err
	}

	aggregator := aggregation.NewAggregator(geometry.NewPlanarContainment(), reducer)
	polygons, err = aggregator.Aggregate(polygons, points, a.InField, a.OutField)
	if err != nil {
		return err
	}

	return ownIo.WritePolygonsFile(polygons, a.Output)
}

func (a Aggregation) readPoints() (*feature.PointCollection, error) {
	if a.PointsFormat == PointsFormatOsm {
		return ownIo.ReadOsmPoints(a.Points)
	}
	return ownIo.ReadPointsFile(a.Points)
}
