package engine

// Block is a single cell coordinate in the playfield
type Block struct {
	X, Y int
}

// Offset returns the block moved by v
func (b Block) Offset(v Vector) Block {
	return Block{X: b.X + v.X, Y: b.Y + v.Y}
}

// blockKey packs an in-bounds block into a map key: column in the upper 16 bits, row in the lower 16.
type blockKey uint32

func keyOf(b Block) blockKey {
	return blockKey(uint32(uint16(b.X))<<16 | uint32(uint16(b.Y)))
}

// Block extracts the coordinate from the key
func (k blockKey) Block() Block {
	return Block{X: int(uint16(k >> 16)), Y: int(uint16(k & 0xFFFF))}
}
