package recordstore

import (
	"context"
	"fmt"
	"sync"

	"gestao_integrada/internal/usecase/interfaces"
)

type memoryTable struct {
	header []string
	rows   [][]string
}

// MemoryStore keeps tables in process memory. It backs tests and the
// "memory" driver for local runs.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]*memoryTable

	// Fault, when set, is consulted before each operation; a non-nil
	// result is returned instead of touching the table.
	Fault func(op, table string) error
}

var _ interfaces.IRecordStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string]*memoryTable)}
}

func (s *MemoryStore) EnsureTable(_ context.Context, table string, header []string) (bool, error) {
	if err := s.fault("ensure", table); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[table]; ok {
		return false, nil
	}
	s.tables[table] = &memoryTable{header: append([]string(nil), header...)}
	return true, nil
}

func (s *MemoryStore) Header(_ context.Context, table string) ([]string, error) {
	if err := s.fault("header", table); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, err := s.table(table)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), t.header...), nil
}

func (s *MemoryStore) ReadAll(_ context.Context, table string) ([]interfaces.Row, error) {
	if err := s.fault("read", table); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, err := s.table(table)
	if err != nil {
		return nil, err
	}
	out := make([]interfaces.Row, 0, len(t.rows))
	for _, cells := range t.rows {
		out = append(out, toRow(t.header, cells))
	}
	return out, nil
}

func (s *MemoryStore) Append(_ context.Context, table string, row []string) error {
	if err := s.fault("append", table); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.table(table)
	if err != nil {
		return err
	}
	t.rows = append(t.rows, append([]string(nil), row...))
	return nil
}

func (s *MemoryStore) ReplaceAll(_ context.Context, table string, header []string, rows [][]string) error {
	if err := s.fault("replace", table); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &memoryTable{header: append([]string(nil), header...)}
	for _, r := range rows {
		t.rows = append(t.rows, append([]string(nil), r...))
	}
	s.tables[table] = t
	return nil
}

func (s *MemoryStore) FindAndSetCell(_ context.Context, table, searchValue string, column int, value string) (bool, error) {
	if err := s.fault("set-cell", table); err != nil {
		return false, err
	}
	if column < 0 {
		return false, fmt.Errorf("%w: %d", ErrColumnOutOfRange, column)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, err := s.table(table)
	if err != nil {
		return false, err
	}
	i := findRow(t.rows, searchValue)
	if i < 0 {
		return false, nil
	}
	t.rows[i] = setCell(t.rows[i], column, value)
	return true, nil
}

func (s *MemoryStore) table(name string) (*memoryTable, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
	}
	return t, nil
}

func (s *MemoryStore) fault(op, table string) error {
	if s.Fault == nil {
		return nil
	}
	return s.Fault(op, table)
}

// toRow maps cells onto header names; missing trailing cells read as "".
func toRow(header, cells []string) interfaces.Row {
	row := make(interfaces.Row, len(header))
	for i, name := range header {
		if i < len(cells) {
			row[name] = cells[i]
		} else {
			row[name] = ""
		}
	}
	return row
}

func findRow(rows [][]string, searchValue string) int {
	for i, cells := range rows {
		for _, c := range cells {
			if c == searchValue {
				return i
			}
		}
	}
	return -1
}

// setCell writes value at column, padding the row with empty cells if needed.
func setCell(cells []string, column int, value string) []string {
	for len(cells) <= column {
		cells = append(cells, "")
	}
	cells[column] = value
	return cells
}
