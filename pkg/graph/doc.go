// Package graph defines the shared weighted edge-list model consumed by the
// algorithm engines, along with the file readers that produce it.
//
// A graph is nothing more than a sequence of undirected, weighted edges between
// string-labelled nodes. There is no separate node declaration: the node set of
// a graph is the union of all edge endpoints. Parallel edges and self-loops are
// not rejected here; engines tolerate both.
//
// # Adjacency
//
// [Adjacency] derives an ephemeral neighbor map from an edge list. Each engine
// builds its own view per invocation and discards it afterwards, so concurrent
// runs over independent inputs never share mutable state.
//
// # Input files
//
// [ReadEdgesFile] parses the comma-separated edge format used by the CLI:
// a header row followed by "source,destination,weight" records. Records with
// too few fields or an unparseable weight are skipped and reported, not fatal.
// [ReadTextFile] reads raw text for Huffman coding.
package graph
