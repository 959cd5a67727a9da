package huffman

import (
	"strings"

	"github.com/Juan-Garzaro/algoviz/pkg/errors"
)

// Encode translates text into the concatenation of its symbols' codes.
// Symbols absent from the code table fail with INTERNAL_ERROR; that can only
// happen when text differs from the input Build saw.
func (r Result) Encode(text string) (string, error) {
	var b strings.Builder
	for _, ch := range text {
		code, ok := r.Codes[ch]
		if !ok {
			return "", errors.New(errors.ErrCodeInternal, "symbol %q not in code table", ch)
		}
		b.WriteString(code)
	}
	return b.String(), nil
}

// Decode reverses Encode by walking the tree bit by bit: '0' descends left,
// '1' descends right, and reaching a leaf emits its symbol and restarts at
// the root. Prefix-freedom makes the greedy walk unambiguous.
//
// The degenerate single-leaf tree decodes every bit to the lone symbol.
func (r Result) Decode(bits string) (string, error) {
	var b strings.Builder

	if r.Root.Leaf {
		for range bits {
			b.WriteRune(r.Root.Symbol)
		}
		return b.String(), nil
	}

	node := r.Root
	for i, bit := range bits {
		switch bit {
		case '0':
			node = node.Left
		case '1':
			node = node.Right
		default:
			return "", errors.New(errors.ErrCodeMalformedRecord, "bit %d is %q, want '0' or '1'", i, bit)
		}
		if node == nil {
			return "", errors.New(errors.ErrCodeMalformedRecord, "bit sequence walks off the tree at %d", i)
		}
		if node.Leaf {
			b.WriteRune(node.Symbol)
			node = r.Root
		}
	}

	if node != r.Root {
		return "", errors.New(errors.ErrCodeMalformedRecord, "trailing bits do not complete a code")
	}
	return b.String(), nil
}

// EncodedLen returns the total bit length of the encoded text without
// materializing it: the sum over symbols of frequency times code length.
func (r Result) EncodedLen() int {
	var total int
	for ch, freq := range r.Freqs {
		total += freq * len(r.Codes[ch])
	}
	return total
}
