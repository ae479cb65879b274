package minitable

import (
	"context"
	"fmt"
)

// Cursor is a logical position within a table, used both for
// sequential scans and for locating the insertion point.
type Cursor struct {
	Table      *Table
	PageIdx    uint32
	CellIdx    uint32
	EndOfTable bool
}

// LeafNodeInsert writes the key and row into the cell at the cursor
// position, shifting any cells at or after it one slot to the right.
func (c *Cursor) LeafNodeInsert(ctx context.Context, key uint32, aRow Row) error {
	aPage, err := c.Table.pager.GetPage(ctx, c.PageIdx)
	if err != nil {
		return fmt.Errorf("get page: %w", err)
	}
	if aPage.LeafNode == nil {
		return fmt.Errorf("error inserting row to a non leaf node, key %d", key)
	}

	cells := aPage.LeafNode.Header.Cells
	if cells >= LeafNodeMaxCells {
		// A full leaf would have to split and promote a key into a
		// parent node, this tree never grows past its root leaf
		return ErrLeafNodeFull
	}

	if c.CellIdx < cells {
		// Need make room for new cell
		for i := cells; i > c.CellIdx; i-- {
			aPage.LeafNode.Cells[i] = aPage.LeafNode.Cells[i-1]
		}
	}

	if err := saveToCell(&aPage.LeafNode.Cells[c.CellIdx], key, aRow); err != nil {
		return err
	}
	aPage.LeafNode.Header.Cells += 1

	return nil
}

// fetchRow deserializes the row under the cursor and advances to the
// next cell, setting the end of table flag after the last one.
func (c *Cursor) fetchRow(ctx context.Context) (Row, error) {
	aPage, err := c.Table.pager.GetPage(ctx, c.PageIdx)
	if err != nil {
		return Row{}, fmt.Errorf("get page: %w", err)
	}

	var aRow Row
	if err := UnmarshalRow(aPage.LeafNode.Cells[c.CellIdx].Value[:], &aRow); err != nil {
		return Row{}, err
	}

	// There are still more cells in the page, move cursor to next cell and return
	if c.CellIdx < aPage.LeafNode.Header.Cells-1 {
		c.CellIdx += 1
		return aRow, nil
	}

	// Single leaf node, there is never a page to the right of it
	c.EndOfTable = true

	return aRow, nil
}

func saveToCell(aCell *Cell, key uint32, aRow Row) error {
	if _, err := aRow.Marshal(aCell.Value[:]); err != nil {
		return err
	}
	aCell.Key = key
	return nil
}
