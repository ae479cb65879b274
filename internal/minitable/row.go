package minitable

import (
	"bytes"
	"fmt"
)

// Row is one logical record. String fields are fixed width, zero
// padded, so every row serializes to exactly RowSize bytes.
type Row struct {
	ID       uint32
	Username [UsernameSize]byte
	Email    [EmailSize]byte
}

// NewRow validates column bounds and pads both strings to fixed width.
func NewRow(id uint32, username, email string) (Row, error) {
	if len(username) > ColumnUsernameSize {
		return Row{}, ErrStringTooLong
	}
	if len(email) > ColumnEmailSize {
		return Row{}, ErrStringTooLong
	}

	aRow := Row{ID: id}
	copy(aRow.Username[:], username)
	copy(aRow.Email[:], email)

	return aRow, nil
}

func (r Row) Size() uint64 {
	return RowSize
}

func (r Row) Marshal(buf []byte) ([]byte, error) {
	size := r.Size()
	if uint64(cap(buf)) >= size {
		buf = buf[:size]
	} else {
		buf = make([]byte, size)
	}

	marshalUint32(buf, r.ID, IDOffset)
	copy(buf[UsernameOffset:EmailOffset], r.Username[:])
	copy(buf[EmailOffset:RowSize], r.Email[:])

	return buf, nil
}

// UnmarshalRow is the exact inverse of Marshal. A buffer shorter than
// RowSize is a programming error, all callers pass pre-sized cell views.
func UnmarshalRow(buf []byte, aRow *Row) error {
	_ = buf[RowSize-1] // early bounds check

	aRow.ID = unmarshalUint32(buf, IDOffset)
	copy(aRow.Username[:], buf[UsernameOffset:EmailOffset])
	copy(aRow.Email[:], buf[EmailOffset:RowSize])

	return nil
}

// String renders the row the way the REPL prints it, string fields are
// treated as zero terminated and trimmed at the first zero byte.
func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, untilNul(r.Username[:]), untilNul(r.Email[:]))
}

func untilNul(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}
