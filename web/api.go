package web

import (
	"encoding/json"
	"fmt"
	"geomax/aggregation"
	"geomax/feature"
	"geomax/geometry"
	ownIo "geomax/io"
	"geomax/stats"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"io"
	"net/http"
)

const maxRequestBodyBytes = 64 << 20

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func NewErrorResponse(message string, err error) ErrorResponse {
	return ErrorResponse{
		Error:   message,
		Details: fmt.Sprintf("%v", err),
	}
}

// AggregationRequest is the body of a POST request to "/aggregate". The reducer defaults to "max".
type AggregationRequest struct {
	Polygons *geojson.FeatureCollection `json:"polygons"`
	Points   *geojson.FeatureCollection `json:"points"`
	InField  string                     `json:"inField"`
	OutField string                     `json:"outField"`
	Reducer  string                     `json:"reducer,omitempty"`
}

func StartServer(port string) {
	r := initRouter()
	sigolo.Infof("Start server on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func initRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/aggregate", handleAggregate).Methods(http.MethodPost)
	return r
}

func handleAggregate(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Access-Control-Allow-Origin", "*")

	body, err := io.ReadAll(io.LimitReader(request.Body, maxRequestBodyBytes))
	if err != nil {
		sigolo.Errorf("Error reading HTTP body of request to '/aggregate': %+v", err)
		writeError(writer, http.StatusInternalServerError, "Error reading HTTP body", err)
		return
	}

	var aggregationRequest AggregationRequest
	err = json.Unmarshal(body, &aggregationRequest)
	if err != nil {
		sigolo.Errorf("Error parsing aggregation request: %+v", err)
		writeError(writer, http.StatusBadRequest, "Error parsing request", err)
		return
	}

	result, err := aggregate(&aggregationRequest)
	if err != nil {
		sigolo.Errorf("Error executing aggregation: %+v", err)
		writeError(writer, http.StatusBadRequest, "Error executing aggregation", err)
		return
	}

	writer.Header().Set("Content-Type", "application/geo+json")
	err = ownIo.WritePolygons(result, writer)
	if err != nil {
		sigolo.Errorf("Error writing aggregation result: %+v", err)
	}
}

func aggregate(aggregationRequest *AggregationRequest) (*feature.PolygonCollection, error) {
	reducerName := aggregationRequest.Reducer
	if reducerName == "" {
		reducerName = stats.MaxReducer.Name()
	}
	reducer, err := stats.ReducerByName(reducerName)
	if err != nil {
		return nil, err
	}

	polygons, err := ownIo.PolygonsFromGeoJson(aggregationRequest.Polygons)
	if err != nil {
		return nil, errors.Wrap(err, "Invalid polygons")
	}

	points, err := ownIo.PointsFromGeoJson(aggregationRequest.Points)
	if err != nil {
		return nil, errors.Wrap(err, "Invalid points")
	}

	sigolo.Debugf("Aggregate %d points into %d polygons", points.Len(), polygons.Len())

	aggregator := aggregation.NewAggregator(geometry.NewPlanarContainment(), reducer)
	return aggregator.Aggregate(polygons, points, aggregationRequest.InField, aggregationRequest.OutField)
}

func writeError(writer http.ResponseWriter, status int, message string, err error) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	responseBytes, marshalErr := json.Marshal(NewErrorResponse(message, err))
	if marshalErr != nil {
		sigolo.Errorf("Error encoding error response: %+v", marshalErr)
		return
	}

	_, err = writer.Write(responseBytes)
	if err != nil {
		sigolo.Errorf("Error writing error response: %+v", err)
	}
}
