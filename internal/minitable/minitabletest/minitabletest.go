package minitabletest

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/minitable/minitable/internal/minitable"
)

// DataGen generates random but bounds-valid rows for tests.
type DataGen struct {
	*gofakeit.Faker
}

func NewDataGen(seed int64) *DataGen {
	return &DataGen{
		Faker: gofakeit.New(seed),
	}
}

func (g *DataGen) Row() minitable.Row {
	aRow, err := minitable.NewRow(
		g.Uint32(),
		truncate(g.Username(), minitable.ColumnUsernameSize),
		truncate(g.Email(), minitable.ColumnEmailSize),
	)
	if err != nil {
		panic(err)
	}
	return aRow
}

func (g *DataGen) Rows(number int) []minitable.Row {
	rows := make([]minitable.Row, 0, number)
	for i := 0; i < number; i++ {
		rows = append(rows, g.Row())
	}
	return rows
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
