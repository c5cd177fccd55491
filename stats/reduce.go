package stats

import (
	"geomax/feature"
	"github.com/pkg/errors"
	"sort"
	"strings"
)

// Reducer turns the values collected for one polygon into a single value. Implementations only consider numeric
// values and return a missing value when there are no numbers to reduce.
type Reducer interface {
	Name() string
	Reduce(values []feature.Value) feature.Value
}

var reducers = map[string]Reducer{
	MaxReducer.Name():  MaxReducer,
	MinReducer.Name():  MinReducer,
	SumReducer.Name():  SumReducer,
	MeanReducer.Name(): MeanReducer,
}

var (
	MaxReducer  = &numericReducer{name: "max", reduce: maxOf}
	MinReducer  = &numericReducer{name: "min", reduce: minOf}
	SumReducer  = &numericReducer{name: "sum", reduce: sumOf}
	MeanReducer = &numericReducer{name: "mean", reduce: meanOf}
)

// ReducerByName returns the reducer with the given (case-insensitive) name.
func ReducerByName(name string) (Reducer, error) {
	reducer, ok := reducers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Errorf("Unknown reducer '%s', supported are: %s", name, strings.Join(ReducerNames(), ", "))
	}
	return reducer, nil
}

func ReducerNames() []string {
	var names []string
	for name := range reducers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Numbers returns all numeric values in the given order. Missing, string and boolean values as well as NaN are
// skipped.
func Numbers(values []feature.Value) []float64 {
	var numbers []float64
	for _, value := range values {
		if number, ok := value.Float(); ok {
			numbers = append(numbers, number)
		}
	}
	return numbers
}

// Max returns the largest numeric value or a missing value when there is none.
func Max(values []feature.Value) feature.Value {
	return MaxReducer.Reduce(values)
}

type numericReducer struct {
	name   string
	reduce func(numbers []float64) float64 // Only called with at least one number.
}

func (r *numericReducer) Name() string {
	return r.name
}

func (r *numericReducer) Reduce(values []feature.Value) feature.Value {
	numbers := Numbers(values)
	if len(numbers) == 0 {
		return feature.Missing()
	}
	return feature.Number(r.reduce(numbers))
}

func maxOf(numbers []float64) float64 {
	result := numbers[0]
	for _, n := range numbers[1:] {
		if n > result {
			result = n
		}
	}
	return result
}

func minOf(numbers []float64) float64 {
	result := numbers[0]
	for _, n := range numbers[1:] {
		if n < result {
			result = n
		}
	}
	return result
}

func sumOf(numbers []float64) float64 {
	result := 0.0
	for _, n := range numbers {
		result += n
	}
	return result
}

func meanOf(numbers []float64) float64 {
	return sumOf(numbers) / float64(len(numbers))
}
