package mst

import (
	"github.com/Juan-Garzaro/algoviz/pkg/errors"
	"github.com/Juan-Garzaro/algoviz/pkg/graph"
)

// Tree is the result of an MST computation: the accepted edges in the order
// they were added, and their summed weight.
type Tree struct {
	Edges       []graph.Edge
	TotalWeight float64
}

// Option configures an MST run.
type Option func(*options)

type options struct {
	root string
}

// WithRoot sets the start node for Prim's algorithm. When unset, or when the
// given node does not appear in the graph, Prim starts from the
// lexicographically smallest node. Kruskal ignores the root.
func WithRoot(root string) Option {
	return func(o *options) { o.root = root }
}

func errNoEdges() error {
	return errors.New(errors.ErrCodeEmptyInput, "edge list is empty")
}
