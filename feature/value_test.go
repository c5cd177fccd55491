package feature

import (
	"encoding/json"
	"geomax/util"
	"math"
	"testing"
)

func TestValueOf(t *testing.T) {
	util.AssertEqual(t, Missing(), ValueOf(nil))
	util.AssertEqual(t, Number(600), ValueOf(600.0))
	util.AssertEqual(t, Number(600), ValueOf(600))
	util.AssertEqual(t, Number(3), ValueOf(uint8(3)))
	util.AssertEqual(t, Number(1.5), ValueOf(json.Number("1.5")))
	util.AssertEqual(t, String("foo"), ValueOf("foo"))
	util.AssertEqual(t, Bool(true), ValueOf(true))
	util.AssertEqual(t, Missing(), ValueOf([]any{1, 2}))
	util.AssertEqual(t, Missing(), ValueOf(map[string]any{"a": 1}))
}

func TestValue_zeroValueIsMissing(t *testing.T) {
	// Arrange
	var value Value

	// Act & Assert
	util.AssertTrue(t, value.IsMissing())
	util.AssertEqual(t, KindMissing, value.Kind())
	util.AssertNil(t, value.Interface())
}

func TestValue_Float(t *testing.T) {
	// Act & Assert
	number, ok := Number(42).Float()
	util.AssertTrue(t, ok)
	util.AssertEqual(t, 42.0, number)

	_, ok = Number(math.NaN()).Float()
	util.AssertFalse(t, ok)

	_, ok = String("42").Float()
	util.AssertFalse(t, ok)

	_, ok = Missing().Float()
	util.AssertFalse(t, ok)
}

func TestValue_Interface(t *testing.T) {
	util.AssertEqual(t, 1.25, Number(1.25).Interface())
	util.AssertEqual(t, "bar", String("bar").Interface())
	util.AssertEqual(t, false, Bool(false).Interface())
}

func TestValue_String(t *testing.T) {
	util.AssertEqual(t, "600", Number(600).String())
	util.AssertEqual(t, "\"foo\"", String("foo").String())
	util.AssertEqual(t, "true", Bool(true).String())
	util.AssertEqual(t, "<missing>", Missing().String())
}
