// Package huffman builds optimal prefix-free binary codes for text.
//
// [Build] runs the full engine: tally symbol frequencies, construct the
// Huffman tree with a min-heap, and derive the code table from one
// root-to-leaf traversal. The result keeps the tree root and the frequency
// table so a rendering collaborator can draw the tree and a frequency chart,
// and records symbols in order of first appearance for deterministic display.
//
// Symbols are runes. A text with a single distinct symbol is a degenerate
// tree of one leaf whose code is "0". No generated code is a prefix of
// another, so [Result.Decode] can greedily and unambiguously reverse
// [Result.Encode].
package huffman
