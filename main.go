package main

import (
	"fmt"
	"geomax/aggregation"
	"geomax/feature"
	"geomax/geometry"
	ownIo "geomax/io"
	"geomax/job"
	"geomax/stats"
	"geomax/web"
	"github.com/alecthomas/kong"
	"github.com/hauke96/sigolo/v2"
	"strings"
)

const VERSION = "v0.1.0"

var cli struct {
	Logging   string      `help:"Logging verbosity." enum:"info,debug,trace" short:"l" default:"info"`
	Version   VersionFlag `help:"Print version information and quit" name:"version" short:"v"`
	Aggregate struct {
		Polygons string `help:"GeoJSON file with the polygon features." placeholder:"<polygon-file>" arg:"" type:"existingfile"`
		Points   string `help:"GeoJSON file with the point features or an .osm/.pbf file when --osm is set." placeholder:"<point-file>" arg:"" type:"existingfile"`
		InField  string `help:"Property of the points to aggregate." short:"i" required:""`
		OutField string `help:"Property of the polygons to store the result in." short:"o" required:""`
		Reducer  string `help:"How to combine the values within a polygon (max, min, sum, mean)." short:"r" default:"max"`
		Osm      bool   `help:"Read the points from the tagged nodes of an OSM file."`
		Output   string `help:"Output GeoJSON file." placeholder:"<output-file>" default:"output.geojson"`
	} `cmd:"" help:"Aggregates the values of all points within each polygon."`
	Run struct {
		JobFile string `help:"YAML file with a list of aggregations." placeholder:"<job-file>" arg:"" type:"existingfile"`
	} `cmd:"" help:"Runs all aggregations of the given job file."`
	Server struct {
		Port string `help:"The port this server should listen to." short:"p" default:"8080"`
	} `cmd:"" help:"Starts an HTTP server accepting aggregation requests on POST /aggregate."`
}

type VersionFlag string

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(vars["version"])
	app.Exit(0)
	return nil
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("geomax"),
		kong.Description("Aggregates point attributes into the polygons containing the points."),
		kong.Vars{
			"version": VERSION,
		},
	)

	if strings.ToLower(cli.Logging) == "debug" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	} else if strings.ToLower(cli.Logging) == "trace" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	} else if strings.ToLower(cli.Logging) == "info" {
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	} else {
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
		sigolo.Fatalf("Unknown logging level '%s'", cli.Logging)
	}

	switch ctx.Command() {
	case "aggregate <polygons> <points>":
		runAggregate()
	case "run <job-file>":
		j, err := job.Load(cli.Run.JobFile)
		sigolo.FatalCheck(err)

		err = j.Run()
		sigolo.FatalCheck(err)
	case "server":
		web.StartServer(cli.Server.Port)
	default:
		sigolo.Errorf("Unknown command '%s'", ctx.Command())
	}
}

func runAggregate() {
	reducer, err := stats.ReducerByName(cli.Aggregate.Reducer)
	sigolo.FatalCheck(err)

	polygons, err := ownIo.ReadPolygonsFile(cli.Aggregate.Polygons)
	sigolo.FatalCheck(err)

	var points *feature.PointCollection
	if cli.Aggregate.Osm {
		points, err = ownIo.ReadOsmPoints(cli.Aggregate.Points)
	} else {
		points, err = ownIo.ReadPointsFile(cli.Aggregate.Points)
	}
	sigolo.FatalCheck(err)

	aggregator := aggregation.NewAggregator(geometry.NewPlanarContainment(), reducer)
	polygons, err = aggregator.Aggregate(polygons, points, cli.Aggregate.InField, cli.Aggregate.OutField)
	sigolo.FatalCheck(err)

	err = ownIo.WritePolygonsFile(polygons, cli.Aggregate.Output)
	sigolo.FatalCheck(err)
}
