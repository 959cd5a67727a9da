package huffman

import (
	"container/heap"

	"github.com/Juan-Garzaro/algoviz/pkg/errors"
)

// Node is one node of the Huffman tree. A leaf carries a symbol; an internal
// node carries exactly two children, where Left is the '0' branch and Right
// the '1' branch. The tree is a strict hierarchy built once and read-only
// afterwards.
type Node struct {
	Symbol rune  // meaningful only when Leaf
	Freq   int   // symbol frequency, or combined frequency for internal nodes
	Leaf   bool
	Left   *Node
	Right  *Node
}

// Result is the output of one Huffman run.
type Result struct {
	// Codes maps every distinct symbol to its binary code string.
	Codes map[rune]string

	// Root is the tree root; its frequency equals the text length.
	Root *Node

	// Freqs is the per-symbol occurrence count.
	Freqs map[rune]int

	// Order lists distinct symbols in order of first appearance in the text.
	// The algorithm does not depend on it; display code does.
	Order []rune
}

// Build runs the Huffman engine over text: frequency count, tree
// construction, code generation. Empty text fails with EMPTY_INPUT.
//
// Complexity: O(n + s log s) time for n characters and s distinct symbols.
func Build(text string) (Result, error) {
	if text == "" {
		return Result{}, errors.New(errors.ErrCodeEmptyInput, "text is empty")
	}

	freqs := make(map[rune]int)
	var order []rune
	for _, ch := range text {
		if freqs[ch] == 0 {
			order = append(order, ch)
		}
		freqs[ch]++
	}

	root := buildTree(freqs, order)

	return Result{
		Codes: generateCodes(root),
		Root:  root,
		Freqs: freqs,
		Order: order,
	}, nil
}

// buildTree combines the two lowest-frequency nodes under a fresh internal
// node until a single root remains. Leaves are seeded in first-appearance
// order and the heap breaks frequency ties by insertion sequence, so the
// tree shape is deterministic for a fixed text.
func buildTree(freqs map[rune]int, order []rune) *Node {
	pq := &nodeHeap{}
	heap.Init(pq)
	for _, ch := range order {
		pq.push(&Node{Symbol: ch, Freq: freqs[ch], Leaf: true})
	}

	for pq.Len() > 1 {
		left := heap.Pop(pq).(heapEntry).node
		right := heap.Pop(pq).(heapEntry).node
		pq.push(&Node{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
		})
	}

	return heap.Pop(pq).(heapEntry).node
}

// generateCodes walks the tree once, appending '0' for left branches and '1'
// for right branches. The traversal is iterative with an explicit stack so a
// pathologically skewed tree cannot exhaust the call stack.
func generateCodes(root *Node) map[rune]string {
	codes := make(map[rune]string)

	// Degenerate single-leaf tree: the lone symbol gets code "0".
	if root.Leaf {
		codes[root.Symbol] = "0"
		return codes
	}

	type frame struct {
		node *Node
		code string
	}
	stack := []frame{{node: root, code: ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.Leaf {
			codes[f.node.Symbol] = f.code
			continue
		}
		if f.node.Right != nil {
			stack = append(stack, frame{node: f.node.Right, code: f.code + "1"})
		}
		if f.node.Left != nil {
			stack = append(stack, frame{node: f.node.Left, code: f.code + "0"})
		}
	}

	return codes
}

// heapEntry wraps a node with an insertion counter: the heap orders by
// frequency first and insertion sequence second, fixing the tie-break.
type heapEntry struct {
	node *Node
	seq  int
}

type nodeHeap struct {
	items []heapEntry
	next  int
}

func (h *nodeHeap) push(n *Node) {
	heap.Push(h, heapEntry{node: n, seq: h.next})
	h.next++
}

func (h nodeHeap) Len() int { return len(h.items) }

func (h nodeHeap) Less(i, j int) bool {
	if h.items[i].node.Freq != h.items[j].node.Freq {
		return h.items[i].node.Freq < h.items[j].node.Freq
	}
	return h.items[i].seq < h.items[j].seq
}

func (h nodeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *nodeHeap) Push(x any) { h.items = append(h.items, x.(heapEntry)) }

func (h *nodeHeap) Pop() any {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]
	return e
}
