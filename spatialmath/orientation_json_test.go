package spatialmath

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"testing"

	"go.viam.com/test"
	"go.viam.com/utils"
)

func TestOrientationConfig(t *testing.T) {
	file, err := os.Open("data/orientations.json")
	test.That(t, err, test.ShouldBeNil)
	defer utils.UncheckedErrorFunc(file.Close)

	data, err := io.ReadAll(file)
	test.That(t, err, test.ShouldBeNil)
	// Parse into map of tests
	var testMap map[string]json.RawMessage
	err = json.Unmarshal(data, &testMap)
	test.That(t, err, test.ShouldBeNil)

	parse := func(name string) (Quaternion, error) {
		t.Helper()
		oc := OrientationConfig{}
		err := json.Unmarshal(testMap[name], &oc)
		test.That(t, err, test.ShouldBeNil)
		return oc.ParseConfig()
	}
	quarter := mustAxisAngle(t, math.Pi/2, ZAxis)

	// Config with unknown orientation
	_, err = parse("wrong")
	test.That(t, err, test.ShouldBeError, "orientation type oiler_angles not recognized")

	// Config with good type, but bad value
	_, err = parse("wrongvalue")
	test.That(t, err, test.ShouldNotBeNil)

	// Empty Config
	q, err := parse("empty")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q, test.ShouldResemble, NewZeroQuaternion())

	q, err = parse("identity")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q, test.ShouldResemble, NewZeroQuaternion())

	q, err = parse("quaternion")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q.AlmostEqual(quarter, 1e-12), test.ShouldBeTrue)

	_, err = parse("zeroquaternion")
	test.That(t, err, test.ShouldNotBeNil)

	q, err = parse("axisangle")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q.AlmostEqual(quarter, 1e-12), test.ShouldBeTrue)

	_, err = parse("zeroaxis")
	test.That(t, err, test.ShouldBeError, ErrZeroAxis)

	q, err = parse("euler")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q.AlmostEqual(quarter, 1e-12), test.ShouldBeTrue)

	var nilConfig *OrientationConfig
	q, err = nilConfig.ParseConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q, test.ShouldResemble, NewZeroQuaternion())
}

func TestOrientationConfigRoundTrip(t *testing.T) {
	quarter := mustAxisAngle(t, math.Pi/2, ZAxis)
	oc, err := NewOrientationConfig(quarter)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, oc.Type, test.ShouldEqual, QuaternionType)
	test.That(t, oc.Validate(), test.ShouldBeNil)

	q, err := oc.ParseConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q, test.ShouldResemble, quarter)

	test.That(t, (&OrientationConfig{Type: "ov_degrees"}).Validate(), test.ShouldBeError,
		"orientation type ov_degrees not recognized")
}

func TestTranslationConfig(t *testing.T) {
	tc := NewTranslationConfig(NewPoint(1, 2, 3))
	test.That(t, tc.ParseConfig(), test.ShouldResemble, NewPoint(1, 2, 3))
}
