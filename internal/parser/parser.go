package parser

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/minitable/minitable/internal/minitable"
)

var (
	ErrNegativeID = fmt.Errorf("id must be positive")
	ErrSyntax     = fmt.Errorf("syntax error")
)

type parser struct{}

func New() *parser {
	return new(parser)
}

// Parse turns one input line into a typed statement. It never touches
// the table, a parse failure leaves no state behind.
func (p *parser) Parse(ctx context.Context, input string) (minitable.Statement, error) {
	input = strings.TrimSpace(input)

	switch {
	case strings.HasPrefix(input, "insert"):
		return p.doParseInsert(input)
	case strings.HasPrefix(input, "select"):
		return minitable.Statement{Kind: minitable.Select}, nil
	default:
		return minitable.Statement{}, fmt.Errorf("unrecognized keyword at start of '%s'", input)
	}
}

func (p *parser) doParseInsert(input string) (minitable.Statement, error) {
	tokens := strings.Fields(input)
	if len(tokens) != 4 {
		return minitable.Statement{}, ErrSyntax
	}

	id, err := strconv.ParseInt(tokens[1], 10, 64)
	if err != nil {
		return minitable.Statement{}, ErrSyntax
	}
	if id < 0 {
		return minitable.Statement{}, ErrNegativeID
	}
	if id > math.MaxUint32 {
		return minitable.Statement{}, ErrSyntax
	}

	aRow, err := minitable.NewRow(uint32(id), tokens[2], tokens[3])
	if err != nil {
		return minitable.Statement{}, err
	}

	return minitable.Statement{
		Kind: minitable.Insert,
		Row:  aRow,
	}, nil
}
