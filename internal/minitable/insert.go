package minitable

import (
	"context"
	"fmt"
)

func (t *Table) executeInsert(ctx context.Context, stmt Statement) (StatementResult, error) {
	if err := t.Insert(ctx, stmt.Row); err != nil {
		return StatementResult{}, err
	}
	return StatementResult{RowsAffected: 1}, nil
}

// Insert appends the row at the end of table cursor, using the row id
// as the cell key. Rows are stored in insertion order.
func (t *Table) Insert(ctx context.Context, aRow Row) error {
	aPage, err := t.pager.GetPage(ctx, RootPageIdx)
	if err != nil {
		return fmt.Errorf("get page: %w", err)
	}
	if aPage.LeafNode.Header.Cells >= LeafNodeMaxCells {
		return ErrTableFull
	}

	aCursor, err := t.End(ctx)
	if err != nil {
		return err
	}

	t.logger.Sugar().With(
		"key", int(aRow.ID),
		"cell_index", int(aCursor.CellIdx),
	).Debug("inserting row")

	return aCursor.LeafNodeInsert(ctx, aRow.ID, aRow)
}
