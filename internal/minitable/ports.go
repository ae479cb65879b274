package minitable

import (
	"context"
)

// Pager is the storage port the table drives. The pager is the sole
// owner of the backing file and every cached page buffer.
type Pager interface {
	GetPage(ctx context.Context, pageIdx uint32) (*Page, error)
	TotalPages() uint32
	Flush(ctx context.Context, pageIdx uint32, size int64) error
	FlushAll(ctx context.Context) error
	Close() error
}
