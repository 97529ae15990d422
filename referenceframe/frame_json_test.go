package referenceframe

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/tf/logging"
	spatial "go.viam.com/tf/spatialmath"
)

const linksJSON = `[
	{"id": "gripper", "parent": "arm", "translation": {"x": 0, "y": 1, "z": 0}},
	{"id": "arm", "parent": "origin", "translation": {"x": 1, "y": 0, "z": 0},
	 "orientation": {"type": "axis_angles", "value": {"th": 1.5707963267948966, "x": 0, "y": 0, "z": 1}}},
	{"id": "camera", "parent": "origin", "translation": {"x": 0, "y": 0, "z": 2},
	 "orientation": {"type": "euler_angles", "value": {"roll": 0, "pitch": 0, "yaw": 3.141592653589793}}}
]`

func TestFrameGraphFromConfig(t *testing.T) {
	var links []*LinkConfig
	test.That(t, json.Unmarshal([]byte(linksJSON), &links), test.ShouldBeNil)

	fg, err := NewFrameGraphFromConfig("robot", links, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, fg.Name(), test.ShouldEqual, "robot")
	test.That(t, fg.FrameNames(), test.ShouldResemble, []string{"arm", "camera", "gripper", Origin})

	parent, err := fg.Parent("gripper")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parent, test.ShouldEqual, "arm")

	// gripper origin is one unit along the arm's y, which the arm's quarter turn points along -x
	out, err := fg.TransformToOrigin(spatial.NewPoint(0, 0, 0), "gripper")
	test.That(t, err, test.ShouldBeNil)
	pointsClose(t, out, spatial.NewPoint(0, 0, 0))

	out, err = fg.Transform(spatial.NewPoint(1, 0, 0), "camera", "arm")
	test.That(t, err, test.ShouldBeNil)
	// camera (1,0,0) is origin (-1,0,2), which is arm (0,2,2)
	pointsClose(t, out, spatial.NewPoint(0, 2, 2))
}

func TestFrameGraphFromConfigErrors(t *testing.T) {
	logger := logging.NewTestLogger(t)

	_, err := NewFrameGraphFromConfig("robot", []*LinkConfig{{ID: "arm", Parent: "base"}}, logger)
	test.That(t, errors.Is(err, ErrFrameNotFound), test.ShouldBeTrue)

	_, err = NewFrameGraphFromConfig("robot", []*LinkConfig{
		{ID: "a", Parent: "b"},
		{ID: "b", Parent: "a"},
		{ID: "c", Parent: Origin},
	}, logger)
	test.That(t, err, test.ShouldBeError, `frames [a b] form a cycle and cannot be attached to "origin"`)

	_, err = NewFrameGraphFromConfig("robot", []*LinkConfig{{ID: "", Parent: ""}}, logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "frame id cannot be empty")
	test.That(t, err.Error(), test.ShouldContainSubstring, "must name a parent")

	bad := &LinkConfig{ID: "arm", Parent: Origin, Orientation: &spatial.OrientationConfig{Type: "ov_degrees"}}
	_, err = NewFrameGraphFromConfig("robot", []*LinkConfig{bad}, logger)
	test.That(t, err, test.ShouldBeError, `frame "arm": orientation type ov_degrees not recognized`)

	_, err = NewFrameGraphFromConfig("robot", []*LinkConfig{{ID: "arm", Parent: Origin}, nil}, logger)
	test.That(t, err, test.ShouldBeError, "frames.1: frame cannot be null")
}

func TestLinkConfigRoundTrip(t *testing.T) {
	q, err := spatial.NewQuaternionFromAxisAngle(math.Pi/4, spatial.XAxis)
	test.That(t, err, test.ShouldBeNil)
	pose := spatial.NewPose(spatial.NewPoint(1, 2, 3), q)

	cfg, err := NewLinkConfig("arm", Origin, pose)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Validate(), test.ShouldBeNil)

	bytes, err := json.Marshal(cfg)
	test.That(t, err, test.ShouldBeNil)
	var decoded LinkConfig
	test.That(t, json.Unmarshal(bytes, &decoded), test.ShouldBeNil)

	decodedPose, err := decoded.Pose()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, decodedPose, test.ShouldResemble, pose)
}
