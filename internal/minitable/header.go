package minitable

import (
	"fmt"
)

const (
	PageTypeLeaf     = byte(0)
	PageTypeInternal = byte(1)

	// CommonNodeHeaderSize is the node type tag, the is-root flag and
	// the parent pointer
	CommonNodeHeaderSize = 1 + 1 + 4
)

// Header is the part of the node header shared by every node type.
type Header struct {
	IsInternal bool
	IsRoot     bool
	Parent     uint32
}

func (h *Header) Size() uint64 {
	return CommonNodeHeaderSize
}

func (h *Header) Marshal(buf []byte) ([]byte, error) {
	size := h.Size()
	if uint64(cap(buf)) >= size {
		buf = buf[:size]
	} else {
		buf = make([]byte, size)
	}

	if h.IsInternal {
		buf[0] = PageTypeInternal
	} else {
		buf[0] = PageTypeLeaf
	}

	if h.IsRoot {
		buf[1] = 1
	} else {
		buf[1] = 0
	}

	marshalUint32(buf, h.Parent, 2)

	return buf[:size], nil
}

func (h *Header) Unmarshal(buf []byte) (uint64, error) {
	if buf[0] != PageTypeLeaf && buf[0] != PageTypeInternal {
		return 0, fmt.Errorf("unrecognised page type byte %d", buf[0])
	}
	h.IsInternal = buf[0] == PageTypeInternal
	h.IsRoot = buf[1] == 1
	h.Parent = unmarshalUint32(buf, 2)

	return h.Size(), nil
}
