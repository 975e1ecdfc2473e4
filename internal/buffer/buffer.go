package buffer

import "github.com/riverfjs/wordify-go/internal/types"

// BlockBuffer accumulates blocks in document order.
//
// A BlockBuffer belongs to exactly one conversion and is passed by pointer
// through the recursion; it is never shared between calls.
type BlockBuffer struct {
	blocks []types.Block
}

// New creates a new BlockBuffer.
func New() *BlockBuffer {
	return &BlockBuffer{
		blocks: make([]types.Block, 0),
	}
}

// Append adds a block to the end of the buffer.
func (bb *BlockBuffer) Append(b types.Block) {
	bb.blocks = append(bb.blocks, b)
}

// Document returns the accumulated blocks. The buffer must not be used
// afterwards; ownership of the slice moves to the caller.
func (bb *BlockBuffer) Document() types.Document {
	doc := types.Document(bb.blocks)
	bb.blocks = nil
	return doc
}
