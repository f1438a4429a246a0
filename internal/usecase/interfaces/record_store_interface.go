package interfaces

import "context"

// Row is a stored record keyed by header field name.
type Row map[string]string

// IRecordStore is the spreadsheet-like table store every repository sits on.
//
// Tables are addressed by name and carry an ordered header. Cells are text.
// Implementations report transient failures (rate limit, server error) in a
// form recordstore.IsTransient recognises so callers can retry them.
type IRecordStore interface {
	// EnsureTable creates the table with the given header when it is absent.
	EnsureTable(ctx context.Context, table string, header []string) (created bool, err error)
	Header(ctx context.Context, table string) ([]string, error)
	ReadAll(ctx context.Context, table string) ([]Row, error)
	Append(ctx context.Context, table string, row []string) error
	ReplaceAll(ctx context.Context, table string, header []string, rows [][]string) error
	// FindAndSetCell sets column (0-based, header order) on the first row holding
	// searchValue in any cell. It reports false when no row matches.
	FindAndSetCell(ctx context.Context, table, searchValue string, column int, value string) (bool, error)
}
