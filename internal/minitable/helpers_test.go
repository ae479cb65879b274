package minitable

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
)

//go:generate mockery --name=Pager --structname=MockPager --inpackage --case=snake --testonly

var (
	gen        = gofakeit.New(time.Now().Unix())
	testLogger = zap.NewNop()
)

func randomRow() Row {
	aRow, err := NewRow(
		gen.Uint32(),
		truncate(gen.Username(), ColumnUsernameSize),
		truncate(gen.Email(), ColumnEmailSize),
	)
	if err != nil {
		panic(err)
	}
	return aRow
}

func randomRows(number int) []Row {
	rows := make([]Row, 0, number)
	for i := 0; i < number; i++ {
		rows = append(rows, randomRow())
	}
	return rows
}

// newRootLeafPage builds a root leaf page holding the given rows, cell
// keys are the row ids, cells in argument order.
func newRootLeafPage(rows ...Row) *Page {
	aLeaf := NewLeafNode()
	aLeaf.Header.IsRoot = true
	aLeaf.Header.Cells = uint32(len(rows))
	for i, aRow := range rows {
		if err := saveToCell(&aLeaf.Cells[i], aRow.ID, aRow); err != nil {
			panic(err)
		}
	}
	return &Page{Index: RootPageIdx, LeafNode: aLeaf}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
