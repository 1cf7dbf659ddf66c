// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/flodiebold/conrod/f32"
	"github.com/flodiebold/conrod/io/input"
)

// graph is an arena of widget nodes indexed by ID-1.
type graph struct {
	nodes []node
	// order lists the widgets placed in the current frame, back
	// to front.
	order []ID
}

type node struct {
	kind   Kind
	parent ID
	// graphicsFor is the widget that receives the input
	// aimed at this one.
	graphicsFor ID
	rect        f32.Rectangle
	// state is a pointer to the widget's persistent state.
	state any
	// frame is the last frame the node was placed in.
	frame uint64
}

func (g *graph) alloc() ID {
	g.nodes = append(g.nodes, node{})
	return ID(len(g.nodes))
}

// node returns the node for id. The pointer is only valid until the
// next alloc.
func (g *graph) node(id ID) *node {
	if id == 0 || int(id) > len(g.nodes) {
		return nil
	}
	return &g.nodes[id-1]
}

// placed returns the node for id if it was placed in frame.
func (g *graph) placed(id ID, frame uint64) (*node, bool) {
	n := g.node(id)
	if n == nil || n.frame != frame {
		return nil, false
	}
	return n, true
}

func (g *graph) beginFrame() {
	g.order = g.order[:0]
}

// target follows graphicsFor links from id to the widget that
// handles its input.
func (g *graph) target(id ID) ID {
	for i := 0; i < len(g.nodes); i++ {
		n := g.node(id)
		if n == nil || n.graphicsFor == 0 {
			return id
		}
		id = n.graphicsFor
	}
	return id
}

// areas returns the hit areas of the widgets placed in the current
// frame.
func (g *graph) areas() []input.Area {
	areas := make([]input.Area, 0, len(g.order))
	for _, id := range g.order {
		areas = append(areas, input.Area{
			Tag:  g.target(id),
			Rect: g.node(id).rect,
		})
	}
	return areas
}

// collect drops the state of every widget not placed in frame and
// returns their IDs. IDs stay allocated so that slots still holding
// them never alias another widget.
func (g *graph) collect(frame uint64) []ID {
	var removed []ID
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.frame == frame || n.kind == "" {
			continue
		}
		removed = append(removed, ID(i+1))
		*n = node{frame: n.frame}
	}
	return removed
}
