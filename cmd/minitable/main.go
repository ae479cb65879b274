// Command minitable is a single table, disk backed record store behind
// a line oriented command interpreter.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/minitable/minitable/internal/minitable"
	"github.com/minitable/minitable/internal/parser"
	"github.com/minitable/minitable/internal/pkg/logging"
)

const cliName = "db"

var cli struct {
	Database string `arg:"" help:"Path to the database file, created when absent." type:"path"`
	LogLevel string `name:"log-level" default:"error" help:"Log level (debug, info, warn, error)."`
}

type metaCommand int

const (
	Unknown metaCommand = iota + 1
	Help
	Exit
	Constants
	BTree
)

func doMetaCommand(input string) metaCommand {
	switch input {
	case "help":
		return Help
	case "exit":
		return Exit
	case "constants":
		return Constants
	case "btree":
		return BTree
	default:
		return Unknown
	}
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name(cliName),
		kong.Description("Single table record store with a line oriented command interpreter."),
	)

	logger, err := logging.New(cli.LogLevel)
	kctx.FatalIfErrorf(err)
	defer logger.Sync()

	dbFile, err := os.OpenFile(cli.Database, os.O_RDWR|os.O_CREATE, 0600)
	kctx.FatalIfErrorf(err)

	aPager, err := minitable.NewPager(dbFile, logger)
	kctx.FatalIfErrorf(err)

	var (
		ctx    = context.Background()
		aTable = minitable.NewTable("main", aPager, logger)
	)

	// Flush-on-close has to run on every exit path, not only on .exit
	defer func() {
		if err := aTable.Close(ctx); err != nil {
			fmt.Printf("error closing table: %s\n", err)
		}
	}()

	rl, err := readline.New(cliName + " > ")
	kctx.FatalIfErrorf(err)
	defer rl.Close()

	aParser := parser.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			// Ctrl-C / Ctrl-D end the session the same way .exit does
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, ".") {
			if quit := runMetaCommand(ctx, aTable, input); quit {
				return
			}
			continue
		}

		stmt, err := aParser.Parse(ctx, input)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			continue
		}

		if err := runStatement(ctx, aTable, stmt); err != nil {
			if errors.Is(err, minitable.ErrTableFull) || errors.Is(err, minitable.ErrLeafNodeFull) {
				fmt.Printf("Error: %s\n", err)
				continue
			}

			// I/O errors and invariant violations are fatal, flush what
			// we can and stop
			logger.Error("fatal storage error", zap.Error(err))
			fmt.Printf("Error: %s\n", err)
			if closeErr := aTable.Close(ctx); closeErr != nil {
				fmt.Printf("error closing table: %s\n", closeErr)
			}
			os.Exit(1)
		}
	}
}

func runStatement(ctx context.Context, aTable *minitable.Table, stmt minitable.Statement) error {
	aResult, err := aTable.ExecuteStatement(ctx, stmt)
	if err != nil {
		return err
	}

	if stmt.Kind == minitable.Select {
		aRow, err := aResult.Rows(ctx)
		for ; err == nil; aRow, err = aResult.Rows(ctx) {
			fmt.Println(aRow)
		}
		if !errors.Is(err, minitable.ErrNoMoreRows) {
			return err
		}
	}

	fmt.Println("Executed.")
	return nil
}

func runMetaCommand(ctx context.Context, aTable *minitable.Table, input string) bool {
	switch doMetaCommand(input[1:]) {
	case Help:
		fmt.Println(".help      - Show available commands")
		fmt.Println(".exit      - Close the database and quit")
		fmt.Println(".constants - Print the on-page layout constants")
		fmt.Println(".btree     - Print cell count and keys of the root leaf")
	case Exit:
		return true
	case Constants:
		printConstants()
	case BTree:
		keys, err := aTable.Keys(ctx)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			return false
		}
		fmt.Printf("leaf (size %d)\n", len(keys))
		for _, key := range keys {
			fmt.Printf("  - %d\n", key)
		}
	case Unknown:
		fmt.Printf("unrecognized command '%s'\n", input)
	}
	return false
}

func printConstants() {
	fmt.Printf("ROW_SIZE=%d\n", minitable.RowSize)
	fmt.Printf("COMMON_NODE_HEADER_SIZE=%d\n", minitable.CommonNodeHeaderSize)
	fmt.Printf("LEAF_NODE_HEADER_SIZE=%d\n", minitable.LeafNodeHeaderSize)
	fmt.Printf("LEAF_NODE_CELL_SIZE=%d\n", minitable.LeafNodeCellSize)
	fmt.Printf("LEAF_NODE_SPACE_FOR_CELLS=%d\n", minitable.LeafNodeSpaceForCells)
	fmt.Printf("LEAF_NODE_MAX_CELLS=%d\n", minitable.LeafNodeMaxCells)
}
