package sheet

import "context"

// Cell is one value destined for a 0-based column of a row.
type Cell struct {
	Column int
	Value  string
}

// Sheet is the spreadsheet driving the batch. Row numbers are 1-based
// sheet coordinates; columns are 0-based.
type Sheet interface {
	ReadAllRows(ctx context.Context) ([][]string, error)
	WriteCell(ctx context.Context, rowNumber, column int, value string) error
	// WriteCells applies all cells in one update so the row never ends up half written.
	WriteCells(ctx context.Context, rowNumber int, cells []Cell) error
}
