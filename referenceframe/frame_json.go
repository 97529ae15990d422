package referenceframe

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"go.viam.com/tf/logging"
	spatial "go.viam.com/tf/spatialmath"
)

// LinkConfig describes one frame: its name, its parent and where it sits relative to that parent.
type LinkConfig struct {
	ID          string                     `json:"id"`
	Parent      string                     `json:"parent"`
	Translation spatial.TranslationConfig  `json:"translation"`
	Orientation *spatial.OrientationConfig `json:"orientation,omitempty"`
}

// NewLinkConfig builds the config that registers frame under parent at pose.
func NewLinkConfig(frame, parent string, pose spatial.Pose) (*LinkConfig, error) {
	orient, err := spatial.NewOrientationConfig(pose.Orientation)
	if err != nil {
		return nil, err
	}
	return &LinkConfig{
		ID:          frame,
		Parent:      parent,
		Translation: *spatial.NewTranslationConfig(pose.Position),
		Orientation: orient,
	}, nil
}

// Validate reports every problem with the link that can be found without a frame graph.
func (cfg *LinkConfig) Validate() error {
	var errAll error
	if cfg.ID == "" {
		multierr.AppendInto(&errAll, errors.New("frame id cannot be empty"))
	}
	if cfg.Parent == "" {
		multierr.AppendInto(&errAll, errors.Errorf("frame %q must name a parent", cfg.ID))
	}
	if err := cfg.Orientation.Validate(); err != nil {
		multierr.AppendInto(&errAll, errors.Wrapf(err, "frame %q", cfg.ID))
	}
	return errAll
}

// Pose returns the pose of the link relative to its parent.
func (cfg *LinkConfig) Pose() (spatial.Pose, error) {
	orient, err := cfg.Orientation.ParseConfig()
	if err != nil {
		return spatial.Pose{}, errors.Wrapf(err, "frame %q", cfg.ID)
	}
	return spatial.NewPose(cfg.Translation.ParseConfig(), orient), nil
}

// NewFrameGraphFromConfig builds a frame graph from links given in any order. A link is registered once its
// parent is in the graph, so parents need not precede their children. A link whose parent is neither the
// origin nor another link fails with a FrameNotFoundError; links that only lead back to each other fail as
// a cycle.
func NewFrameGraphFromConfig(name string, links []*LinkConfig, logger logging.Logger) (*FrameGraph, error) {
	fg := NewFrameGraph(name, logger)

	pending := make([]*LinkConfig, 0, len(links))
	declared := map[string]bool{}
	for i, link := range links {
		if link == nil {
			return nil, errors.Errorf("frames.%d: frame cannot be null", i)
		}
		if err := link.Validate(); err != nil {
			return nil, err
		}
		pending = append(pending, link)
		declared[link.ID] = true
	}

	for len(pending) > 0 {
		remaining := pending[:0:0]
		for _, link := range pending {
			if _, err := fg.node(link.Parent); err != nil {
				if !declared[link.Parent] {
					return nil, err
				}
				remaining = append(remaining, link)
				continue
			}
			pose, err := link.Pose()
			if err != nil {
				return nil, err
			}
			if err := fg.Register(link.ID, link.Parent, pose); err != nil {
				return nil, err
			}
		}
		if len(remaining) == len(pending) {
			return nil, NewCyclicFramesError(lo.Map(remaining, func(link *LinkConfig, _ int) string {
				return link.ID
			}))
		}
		pending = remaining
	}
	return fg, nil
}
