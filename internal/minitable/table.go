package minitable

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Table associates the root page with a pager. There is exactly one
// table per file and its root is always page 0.
type Table struct {
	Name string

	pager     Pager
	logger    *zap.Logger
	closeOnce sync.Once
}

func NewTable(name string, aPager Pager, logger *zap.Logger) *Table {
	return &Table{
		Name:   name,
		pager:  aPager,
		logger: logger,
	}
}

// Start positions a cursor at the first cell of the root leaf. End of
// table is set right away when the leaf holds no cells.
func (t *Table) Start(ctx context.Context) (*Cursor, error) {
	aPage, err := t.pager.GetPage(ctx, RootPageIdx)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}

	return &Cursor{
		Table:      t,
		PageIdx:    RootPageIdx,
		CellIdx:    0,
		EndOfTable: aPage.LeafNode.Header.Cells == 0,
	}, nil
}

// End positions a cursor one past the last cell of the root leaf,
// the canonical insertion point.
func (t *Table) End(ctx context.Context) (*Cursor, error) {
	aPage, err := t.pager.GetPage(ctx, RootPageIdx)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}

	return &Cursor{
		Table:      t,
		PageIdx:    RootPageIdx,
		CellIdx:    aPage.LeafNode.Header.Cells,
		EndOfTable: true,
	}, nil
}

// Keys returns the cell keys of the root leaf in stored order.
func (t *Table) Keys(ctx context.Context) ([]uint32, error) {
	aPage, err := t.pager.GetPage(ctx, RootPageIdx)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	return aPage.LeafNode.Keys(), nil
}

// Close flushes every cached page back to the file and closes it.
// Teardown runs exactly once, later calls are no-ops.
func (t *Table) Close(ctx context.Context) error {
	var err error
	t.closeOnce.Do(func() {
		t.logger.Sugar().With("table", t.Name).Debug("closing table")
		err = multierr.Append(t.pager.FlushAll(ctx), t.pager.Close())
	})
	return err
}
