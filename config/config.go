// Package config defines the structures used to describe a frame graph on disk.
package config

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/tf/logging"
	"go.viam.com/tf/referenceframe"
)

// Config describes a frame graph: its name and the frames to register in it.
type Config struct {
	Name   string                       `json:"name"`
	Frames []*referenceframe.LinkConfig `json:"frames"`

	// ConfigFilePath is the path the config was read from, if any.
	ConfigFilePath string `json:"-"`
}

// Validate ensures all parts of the config are valid, reporting every problem it finds.
func (c *Config) Validate() error {
	var errAll error
	seen := map[string]bool{}
	for idx, frame := range c.Frames {
		if frame == nil {
			multierr.AppendInto(&errAll, errors.Errorf("frames.%d: frame cannot be null", idx))
			continue
		}
		if err := frame.Validate(); err != nil {
			multierr.AppendInto(&errAll, errors.Wrapf(err, "frames.%d", idx))
		}
		if frame.ID == referenceframe.Origin {
			multierr.AppendInto(&errAll, errors.Errorf("frames.%d: %q is reserved", idx, referenceframe.Origin))
		}
		if frame.ID != "" && seen[frame.ID] {
			multierr.AppendInto(&errAll, errors.Errorf("frames.%d: duplicate frame %q", idx, frame.ID))
		}
		seen[frame.ID] = true
	}
	return errAll
}

// FrameGraph builds the frame graph the config describes.
func (c *Config) FrameGraph(logger logging.Logger) (*referenceframe.FrameGraph, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	name := c.Name
	if name == "" {
		name = "default"
	}
	return referenceframe.NewFrameGraphFromConfig(name, c.Frames, logger)
}
