package minitable

import (
	"context"
	"fmt"
)

// Select scans the whole table in stored cell order. Rows are streamed
// through the result rather than materialized up front.
func (t *Table) Select(ctx context.Context) (StatementResult, error) {
	aCursor, err := t.Start(ctx)
	if err != nil {
		return StatementResult{}, err
	}

	t.logger.Sugar().With(
		"page_index", int(aCursor.PageIdx),
		"cell_index", int(aCursor.CellIdx),
	).Debug("fetching rows from")

	var (
		rowsPipe   = make(chan Row)
		errorsPipe = make(chan error, 1)
	)

	go func(out chan<- Row) {
		defer close(out)
		for !aCursor.EndOfTable {
			aRow, err := aCursor.fetchRow(ctx)
			if err != nil {
				errorsPipe <- err
				return
			}

			select {
			case <-ctx.Done():
				return
			case out <- aRow:
			}
		}
	}(rowsPipe)

	aResult := StatementResult{
		Rows: func(ctx context.Context) (Row, error) {
			select {
			case <-ctx.Done():
				return Row{}, fmt.Errorf("context done: %w", ctx.Err())
			case err := <-errorsPipe:
				return Row{}, err
			case aRow, open := <-rowsPipe:
				if !open {
					return Row{}, ErrNoMoreRows
				}
				return aRow, nil
			}
		},
	}

	return aResult, nil
}
