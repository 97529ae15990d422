// Package referenceframe keeps a tree of named coordinate frames and converts points between them.
// This is useful when, for example, a camera is mounted on a gripper attached to an arm, and a point the
// camera sees needs to be expressed relative to the arm's base.
package referenceframe

import (
	"slices"
	"sync"

	"github.com/samber/lo"

	"go.viam.com/tf/logging"
	spatial "go.viam.com/tf/spatialmath"
)

// Origin is the reserved name of the root frame. It is always present and always has the identity transform.
const Origin = "origin"

// FrameGraph represents a tree of frames connected to each other, allowing for transformations between any
// two frames. Every frame except the origin has exactly one parent that was already registered when the frame
// was. Frames cannot be removed or re-parented.
//
// Registration takes a write lock and queries take a read lock, so queries may run concurrently with each
// other but never with a registration.
type FrameGraph struct {
	name   string
	logger logging.Logger

	mu     sync.RWMutex
	nodes  []frameNode
	frames map[string]nodeID
}

// NewFrameGraph creates a frame graph holding only the origin frame.
func NewFrameGraph(name string, logger logging.Logger) *FrameGraph {
	fg := &FrameGraph{
		name:   name,
		logger: logger,
		frames: map[string]nodeID{},
	}
	fg.registerRoot()
	return fg
}

// registerRoot creates the origin node with the identity transform. It runs once, at construction.
func (fg *FrameGraph) registerRoot() {
	fg.frames[Origin] = fg.addNode(Origin, spatial.NewZeroRigidTransform(), noParent)
}

// Name returns the name of the frame graph.
func (fg *FrameGraph) Name() string {
	return fg.name
}

// Register adds frame as a child of parent, located at pose relative to the parent. The parent must already
// be registered or a FrameNotFoundError is returned and the graph is left untouched.
//
// The node stores the inverse of the pose, which is the transform that maps the frame's coordinates back
// into its parent's. Registering a name that is already in use points the name at the new node but leaves
// the old node attached to its old parent; registering "origin" replaces the root's name entry the same way.
func (fg *FrameGraph) Register(frame, parent string, pose spatial.Pose) error {
	fg.mu.Lock()
	defer fg.mu.Unlock()

	parentID, err := fg.node(parent)
	if err != nil {
		return err
	}
	if old, ok := fg.frames[frame]; ok {
		fg.logger.Warnw("re-registering frame; the previous node stays attached to its old parent",
			"frame", frame, "old_parent", fg.parentName(old), "new_parent", parent)
		if frame == Origin {
			fg.logger.Warnw("origin frame replaced; transforms to origin now resolve to the new frame", "parent", parent)
		}
	}

	transform := spatial.NewRigidTransformFromPose(pose).Inverse()
	fg.frames[frame] = fg.addNode(frame, transform, parentID)
	fg.logger.Debugw("registered frame", "graph", fg.name, "frame", frame, "parent", parent)
	return nil
}

// RegisterToOrigin adds frame as a child of the origin frame.
func (fg *FrameGraph) RegisterToOrigin(frame string, pose spatial.Pose) error {
	return fg.Register(frame, Origin, pose)
}

// Lookup returns the transform stored for frame. This is the inverse of the pose the frame was registered
// with, so Lookup(frame).Inverse() recovers that pose.
func (fg *FrameGraph) Lookup(frame string) (spatial.RigidTransform, error) {
	fg.mu.RLock()
	defer fg.mu.RUnlock()

	id, err := fg.node(frame)
	if err != nil {
		return spatial.RigidTransform{}, err
	}
	return fg.nodes[id].transform, nil
}

// Pose returns the pose frame was registered with, relative to its parent.
func (fg *FrameGraph) Pose(frame string) (spatial.Pose, error) {
	transform, err := fg.Lookup(frame)
	if err != nil {
		return spatial.Pose{}, err
	}
	return transform.Inverse().Pose(), nil
}

// Transform re-expresses p, given in the coordinates of from, in the coordinates of to.
func (fg *FrameGraph) Transform(p spatial.Point, from, to string) (spatial.Point, error) {
	fg.mu.RLock()
	defer fg.mu.RUnlock()

	src, err := fg.node(from)
	if err != nil {
		return spatial.Point{}, err
	}
	dst, err := fg.node(to)
	if err != nil {
		return spatial.Point{}, err
	}
	return fg.transformPoint(p, src, dst), nil
}

// TransformToOrigin re-expresses p, given in the coordinates of from, in the coordinates of the origin.
func (fg *FrameGraph) TransformToOrigin(p spatial.Point, from string) (spatial.Point, error) {
	return fg.Transform(p, from, Origin)
}

// FrameNames returns the sorted names of every frame in the graph, including the origin.
func (fg *FrameGraph) FrameNames() []string {
	fg.mu.RLock()
	defer fg.mu.RUnlock()

	names := lo.Keys(fg.frames)
	slices.Sort(names)
	return names
}

// Parent returns the name of frame's parent. The origin has no parent and returns ErrNoParent.
func (fg *FrameGraph) Parent(frame string) (string, error) {
	fg.mu.RLock()
	defer fg.mu.RUnlock()

	id, err := fg.node(frame)
	if err != nil {
		return "", err
	}
	if fg.nodes[id].parent == noParent {
		return "", ErrNoParent
	}
	return fg.parentName(id), nil
}

// Children returns the names of the frames registered directly under frame, in registration order.
// A frame whose name was re-registered elsewhere is still listed under its original parent.
func (fg *FrameGraph) Children(frame string) ([]string, error) {
	fg.mu.RLock()
	defer fg.mu.RUnlock()

	id, err := fg.node(frame)
	if err != nil {
		return nil, err
	}
	return lo.Map(fg.nodes[id].children, func(child nodeID, _ int) string {
		return fg.nodes[child].name
	}), nil
}

// TracebackFrame traces the parentage of the given frame up to the origin, and returns the full list of frames
// in between. The list will include both the query frame and the origin.
func (fg *FrameGraph) TracebackFrame(frame string) ([]string, error) {
	fg.mu.RLock()
	defer fg.mu.RUnlock()

	id, err := fg.node(frame)
	if err != nil {
		return nil, err
	}
	return lo.Map(fg.ancestors(id), func(ancestor nodeID, _ int) string {
		return fg.nodes[ancestor].name
	}), nil
}

// node returns the id registered under name.
func (fg *FrameGraph) node(name string) (nodeID, error) {
	id, ok := fg.frames[name]
	if !ok {
		return noParent, NewFrameNotFoundError(name)
	}
	return id, nil
}

func (fg *FrameGraph) parentName(id nodeID) string {
	parent := fg.nodes[id].parent
	if parent == noParent {
		return ""
	}
	return fg.nodes[parent].name
}
