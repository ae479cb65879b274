package minitable

const (
	// LeafNodeHeaderSize is the common node header plus the 4 byte cell count
	LeafNodeHeaderSize = CommonNodeHeaderSize + 4
	// LeafNodeCellSize is a 4 byte key immediately followed by a serialized row
	LeafNodeCellSize = 4 + RowSize
	// LeafNodeSpaceForCells is the page body left for cells (4086 bytes)
	LeafNodeSpaceForCells = PageSize - LeafNodeHeaderSize
	// LeafNodeMaxCells works out to 13 cells for a 4096 byte page
	LeafNodeMaxCells = LeafNodeSpaceForCells / LeafNodeCellSize
)

type LeafNodeHeader struct {
	Header
	Cells uint32
}

func (h *LeafNodeHeader) Size() uint64 {
	return h.Header.Size() + 4
}

func (h *LeafNodeHeader) Marshal(buf []byte) ([]byte, error) {
	size := h.Size()
	if uint64(cap(buf)) >= size {
		buf = buf[:size]
	} else {
		buf = make([]byte, size)
	}

	i := uint64(0)

	hbuf, err := h.Header.Marshal(buf[i:])
	if err != nil {
		return nil, err
	}
	i += uint64(len(hbuf))

	marshalUint32(buf, h.Cells, i)

	return buf[:size], nil
}

func (h *LeafNodeHeader) Unmarshal(buf []byte) (uint64, error) {
	i := uint64(0)

	hi, err := h.Header.Unmarshal(buf[i:])
	if err != nil {
		return 0, err
	}
	i += hi

	h.Cells = unmarshalUint32(buf, i)

	return h.Size(), nil
}

// Cell is one key plus row pair. Value is a fixed size array so that
// cells are plain values, shifting cells around a node copies the row
// bytes instead of aliasing them.
type Cell struct {
	Key   uint32
	Value [RowSize]byte
}

func (c *Cell) Size() uint64 {
	return LeafNodeCellSize
}

func (c *Cell) Marshal(buf []byte) ([]byte, error) {
	size := c.Size()
	if uint64(cap(buf)) >= size {
		buf = buf[:size]
	} else {
		buf = make([]byte, size)
	}

	i := uint64(0)

	marshalUint32(buf, c.Key, i)
	i += 4

	copy(buf[i:], c.Value[:])
	i += RowSize

	return buf[:i], nil
}

func (c *Cell) Unmarshal(buf []byte) (uint64, error) {
	i := uint64(0)

	c.Key = unmarshalUint32(buf, i)
	i += 4

	copy(c.Value[:], buf[i:i+RowSize])
	i += RowSize

	return i, nil
}

// LeafNode interprets a page as an ordered array of cells. The zero
// value is a fresh empty leaf.
type LeafNode struct {
	Header LeafNodeHeader
	Cells  [LeafNodeMaxCells]Cell
}

func NewLeafNode() *LeafNode {
	return new(LeafNode)
}

func (n *LeafNode) Size() uint64 {
	size := n.Header.Size()
	for idx := range n.Cells {
		size += n.Cells[idx].Size()
	}
	return size
}

// Marshal always writes every cell slot so the page image has a
// deterministic layout regardless of how many cells are occupied.
func (n *LeafNode) Marshal(buf []byte) ([]byte, error) {
	size := n.Size()
	if uint64(cap(buf)) >= size {
		buf = buf[:size]
	} else {
		buf = make([]byte, size)
	}

	i := uint64(0)

	hbuf, err := n.Header.Marshal(buf[i:])
	if err != nil {
		return nil, err
	}
	i += uint64(len(hbuf))

	for idx := range n.Cells {
		cbuf, err := n.Cells[idx].Marshal(buf[i:])
		if err != nil {
			return nil, err
		}
		i += uint64(len(cbuf))
	}

	return buf[:i], nil
}

func (n *LeafNode) Unmarshal(buf []byte) (uint64, error) {
	i := uint64(0)

	hi, err := n.Header.Unmarshal(buf[i:])
	if err != nil {
		return 0, err
	}
	i += hi

	for idx := 0; idx < int(n.Header.Cells); idx++ {
		ci, err := n.Cells[idx].Unmarshal(buf[i:])
		if err != nil {
			return 0, err
		}
		i += ci
	}

	return i, nil
}

// Keys returns the cell keys in stored order.
func (n *LeafNode) Keys() []uint32 {
	keys := make([]uint32, 0, n.Header.Cells)
	for idx := uint32(0); idx < n.Header.Cells; idx++ {
		keys = append(keys, n.Cells[idx].Key)
	}
	return keys
}
