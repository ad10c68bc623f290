/*
huffman.go packs a sequence of move-list indices into a compact bitstream.
The code table is built once, at package init, from a synthetic geometric
frequency prior favoring low indices -- move generators conventionally place
captures and central-square moves early in the list, so indices near the
front of MoveList are, on average, played more often than indices near the
back (see DESIGN.md for why this prior is synthetic rather than corpus-derived).
*/
package game

import (
	"container/heap"

	corvid "github.com/augurchess/corvid"
)

type huffmanNode struct {
	freq        int
	index       int
	left, right *huffmanNode
}

type nodeHeap []*huffmanNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].freq < h[j].freq }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*huffmanNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

var huffmanCodes [corvid.MaxLegalMoves]string

func init() {
	h := &nodeHeap{}
	heap.Init(h)
	for i := 0; i < corvid.MaxLegalMoves; i++ {
		heap.Push(h, &huffmanNode{freq: corvid.MaxLegalMoves - i, index: i})
	}
	for h.Len() > 1 {
		a := heap.Pop(h).(*huffmanNode)
		b := heap.Pop(h).(*huffmanNode)
		heap.Push(h, &huffmanNode{freq: a.freq + b.freq, index: -1, left: a, right: b})
	}
	assignCodes(heap.Pop(h).(*huffmanNode), "")
}

func assignCodes(n *huffmanNode, prefix string) {
	if n.left == nil && n.right == nil {
		huffmanCodes[n.index] = prefix
		return
	}
	assignCodes(n.left, prefix+"0")
	assignCodes(n.right, prefix+"1")
}

// bitWriter packs a stream of '0'/'1' characters into bytes, most
// significant bit first, padding the final byte with zero bits.
type bitWriter struct {
	buf   []byte
	cur   byte
	nBits uint
}

func (w *bitWriter) writeBits(s string) {
	for _, c := range s {
		w.cur <<= 1
		if c == '1' {
			w.cur |= 1
		}
		w.nBits++
		if w.nBits == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur = 0
			w.nBits = 0
		}
	}
}

func (w *bitWriter) bytes() []byte {
	if w.nBits > 0 {
		w.cur <<= 8 - w.nBits
		w.buf = append(w.buf, w.cur)
	}
	return w.buf
}

// Compress packs a sequence of move-list indices (as returned by
// Game.MoveIndices) into a Huffman-coded bitstream.
func Compress(indices []int) []byte {
	var w bitWriter
	for _, idx := range indices {
		w.writeBits(huffmanCodes[idx])
	}
	return w.bytes()
}

// Decompress unpacks exactly count move-list indices from a bitstream
// produced by Compress.
func Decompress(data []byte, count int) []int {
	root := rebuildTree()
	out := make([]int, 0, count)
	node := root
	for _, byt := range data {
		for bit := 7; bit >= 0 && len(out) < count; bit-- {
			if byt&(1<<uint(bit)) != 0 {
				node = node.right
			} else {
				node = node.left
			}
			if node.left == nil && node.right == nil {
				out = append(out, node.index)
				node = root
			}
		}
	}
	return out
}

func rebuildTree() *huffmanNode {
	h := &nodeHeap{}
	heap.Init(h)
	for i := 0; i < corvid.MaxLegalMoves; i++ {
		heap.Push(h, &huffmanNode{freq: corvid.MaxLegalMoves - i, index: i})
	}
	for h.Len() > 1 {
		a := heap.Pop(h).(*huffmanNode)
		b := heap.Pop(h).(*huffmanNode)
		heap.Push(h, &huffmanNode{freq: a.freq + b.freq, index: -1, left: a, right: b})
	}
	return heap.Pop(h).(*huffmanNode)
}
