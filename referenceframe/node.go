package referenceframe

import (
	spatial "go.viam.com/tf/spatialmath"
)

// nodeID indexes a frameNode in its graph's arena. IDs are stable for the life of the graph.
type nodeID int

// noParent is the parent of the root node.
const noParent nodeID = -1

// frameNode is one frame in the tree. Parent and child links are ids into the owning graph's arena, so the
// graph is the only owner of every node.
type frameNode struct {
	name string
	// transform maps this frame's coordinates into its parent's; it is the inverse of the registered pose.
	transform spatial.RigidTransform
	parent    nodeID
	children  []nodeID
}

// addNode appends a node to the arena and links it under parent.
func (fg *FrameGraph) addNode(name string, transform spatial.RigidTransform, parent nodeID) nodeID {
	id := nodeID(len(fg.nodes))
	fg.nodes = append(fg.nodes, frameNode{
		name:      name,
		transform: transform,
		parent:    parent,
	})
	if parent != noParent {
		fg.nodes[parent].children = append(fg.nodes[parent].children, id)
	}
	return id
}
