package feature

import (
	"geomax/util"
	"testing"
)

func TestPropertiesOf(t *testing.T) {
	// Arrange
	raw := map[string]any{
		"population": 200.0,
		"name":       "foo",
		"empty":      nil,
	}

	// Act
	properties := PropertiesOf(raw)

	// Assert
	util.AssertEqual(t, 3, len(properties))
	util.AssertEqual(t, Number(200), properties.Get("population"))
	util.AssertEqual(t, String("foo"), properties.Get("name"))
	util.AssertTrue(t, properties.Has("empty"))
	util.AssertTrue(t, properties.Get("empty").IsMissing())
}

func TestPropertiesOf_nil(t *testing.T) {
	// Act
	properties := PropertiesOf(nil)

	// Assert
	util.AssertTrue(t, properties == nil)
	util.AssertTrue(t, properties.Get("anything").IsMissing())
	util.AssertFalse(t, properties.Has("anything"))
}

func TestProperties_Raw(t *testing.T) {
	// Arrange
	properties := NewProperties()
	properties.Set("max", Number(600))
	properties.Set("none", Missing())

	// Act
	raw := properties.Raw()

	// Assert
	util.AssertEqual(t, map[string]any{"max": 600.0, "none": nil}, raw)
}
