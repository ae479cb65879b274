package minitable

const (
	PageSize = 4096 // 4 kilobytes
	// MaxPages caps how big a single table file can grow
	MaxPages = 100
)

// RootPageIdx is fixed, page 0 is always the root leaf node.
const RootPageIdx = uint32(0)

type Page struct {
	Index    uint32
	LeafNode *LeafNode
}

func (p *Page) GetMaxKey() (uint32, bool) {
	// Empty leaf node, no keys yet
	if p.LeafNode.Header.Cells == 0 {
		return 0, false
	}
	return p.LeafNode.Cells[p.LeafNode.Header.Cells-1].Key, true
}
