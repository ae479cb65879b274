package minitable

import (
	"errors"
)

const (
	// Maximum number of characters accepted for each string column.
	// The serialized field reserves one extra byte so even a maximum
	// length value keeps a terminating zero byte.
	ColumnUsernameSize = 32
	ColumnEmailSize    = 255

	IDSize       = 4
	UsernameSize = ColumnUsernameSize + 1
	EmailSize    = ColumnEmailSize + 1

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	// RowSize is the exact serialized size of a row (293 bytes)
	RowSize = IDSize + UsernameSize + EmailSize
)

var (
	ErrStringTooLong = errors.New("string is too long")
	ErrTableFull     = errors.New("table full")
	ErrLeafNodeFull  = errors.New("leaf node full, node splitting not implemented")
	ErrNoMoreRows    = errors.New("no more rows")
)
