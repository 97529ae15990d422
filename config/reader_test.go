package config

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"go.viam.com/test"

	"go.viam.com/tf/logging"
	"go.viam.com/tf/referenceframe"
	spatial "go.viam.com/tf/spatialmath"
)

func TestReadFile(t *testing.T) {
	t.Setenv("BASE_HEIGHT", "0.75")
	logger := logging.NewTestLogger(t)

	cfg, err := ReadFile(context.Background(), "data/frames.json", logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Name, test.ShouldEqual, "rover")
	test.That(t, cfg.ConfigFilePath, test.ShouldEqual, "data/frames.json")
	test.That(t, cfg.Frames, test.ShouldHaveLength, 2)
	test.That(t, cfg.Frames[0].Translation.Z, test.ShouldEqual, 0.75)

	fg, err := cfg.FrameGraph(logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, fg.Name(), test.ShouldEqual, "rover")

	// the lidar faces backwards, so its +x is the base's -x
	out, err := fg.TransformToOrigin(spatial.NewPoint(1, 0, 0), "lidar")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out.X, test.ShouldAlmostEqual, -0.5)
	test.That(t, out.Y, test.ShouldAlmostEqual, 0)
	test.That(t, out.Z, test.ShouldAlmostEqual, 1)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(context.Background(), "data/nope.json", logging.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, os.ErrNotExist), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "data/nope.json")
}

func TestFromReaderErrors(t *testing.T) {
	logger := logging.NewTestLogger(t)
	ctx := context.Background()

	_, err := FromReader(ctx, "", strings.NewReader(`{"frames": [{"id": "a", "parent": "origin", "color": "red"}]}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot parse config")

	_, err = FromReader(ctx, "", strings.NewReader(`{"frames": [
		{"id": "a", "parent": "origin"},
		{"id": "a", "parent": "origin"},
		{"id": "origin", "parent": "a"},
		null
	]}`), logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `frames.1: duplicate frame "a"`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `frames.2: "origin" is reserved`)
	test.That(t, err.Error(), test.ShouldContainSubstring, "frames.3: frame cannot be null")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = FromReader(cancelled, "", strings.NewReader(`{}`), logger)
	test.That(t, err, test.ShouldBeError, context.Canceled)
}

func TestConfigFrameGraph(t *testing.T) {
	cfg := &Config{Frames: []*referenceframe.LinkConfig{
		{ID: "arm", Parent: "base"},
	}}
	_, err := cfg.FrameGraph(logging.NewTestLogger(t))
	test.That(t, errors.Is(err, referenceframe.ErrFrameNotFound), test.ShouldBeTrue)

	cfg = &Config{}
	fg, err := cfg.FrameGraph(logging.NewTestLogger(t))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, fg.Name(), test.ShouldEqual, "default")
	test.That(t, fg.FrameNames(), test.ShouldResemble, []string{referenceframe.Origin})
}
