package referenceframe

import (
	"slices"

	spatial "go.viam.com/tf/spatialmath"
)

// ancestors returns the chain of nodes from id up to the root, both inclusive.
func (fg *FrameGraph) ancestors(id nodeID) []nodeID {
	var chain []nodeID
	for cur := id; cur != noParent; cur = fg.nodes[cur].parent {
		chain = append(chain, cur)
	}
	return chain
}

// lowestCommonAncestor walks up from a until it reaches a node that is also an ancestor of b. Every node
// shares the root as an ancestor, so the walk always terminates.
func (fg *FrameGraph) lowestCommonAncestor(a, b nodeID) nodeID {
	bAncestors := map[nodeID]struct{}{}
	for _, id := range fg.ancestors(b) {
		bAncestors[id] = struct{}{}
	}
	for cur := a; cur != noParent; cur = fg.nodes[cur].parent {
		if _, ok := bAncestors[cur]; ok {
			return cur
		}
	}
	// unreachable in a connected tree
	return noParent
}

// transformPoint moves p from src's coordinates up to the lowest common ancestor of src and dst, then down
// into dst's coordinates.
func (fg *FrameGraph) transformPoint(p spatial.Point, src, dst nodeID) spatial.Point {
	if src == dst {
		return p
	}
	lca := fg.lowestCommonAncestor(src, dst)

	for cur := src; cur != lca; cur = fg.nodes[cur].parent {
		p = toParent(p, fg.nodes[cur].transform)
	}

	chain := fg.ancestors(dst)
	stop := slices.Index(chain, lca)
	for i := stop - 1; i >= 0; i-- {
		p = toChild(p, fg.nodes[chain[i]].transform)
	}
	return p
}

// toParent takes p from a frame's coordinates into its parent's, given the frame's stored (inverted) transform.
func toParent(p spatial.Point, t spatial.RigidTransform) spatial.Point {
	rotated := t.Rotation.Inverse().Rotate(p)
	return rotated.Sub(t.Translation)
}

// toChild takes p from a parent's coordinates into the frame with stored transform t. The stored translation is
// negated once at registration, so it is negated again here to recover the registered position.
func toChild(p spatial.Point, t spatial.RigidTransform) spatial.Point {
	return t.Rotation.Rotate(p.Sub(t.Translation.Mul(-1)))
}
