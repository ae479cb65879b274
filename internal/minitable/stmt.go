package minitable

import (
	"context"
	"errors"
)

var errUnrecognizedStatementType = errors.New("unrecognised statement type")

type StatementKind int

const (
	Insert StatementKind = iota + 1
	Select
)

type Statement struct {
	Kind StatementKind
	Row  Row
}

type StatementResult struct {
	RowsAffected int
	// Rows returns the next row of the result, ErrNoMoreRows once the
	// result is drained
	Rows func(ctx context.Context) (Row, error)
}

// ExecuteStatement dispatches a prepared statement against the table.
func (t *Table) ExecuteStatement(ctx context.Context, stmt Statement) (StatementResult, error) {
	switch stmt.Kind {
	case Insert:
		return t.executeInsert(ctx, stmt)
	case Select:
		return t.Select(ctx)
	}
	return StatementResult{}, errUnrecognizedStatementType
}
