package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gestao_integrada/internal/usecase/interfaces"
)

// columnIndex resolves a field to its position in the live table header, so
// a reordered sheet never gets the wrong column written.
func columnIndex(ctx context.Context, store interfaces.IRecordStore, table, field string) (int, error) {
	header, err := store.Header(ctx, table)
	if err != nil {
		return 0, err
	}
	for i, name := range header {
		if strings.TrimSpace(name) == field {
			return i, nil
		}
	}
	return 0, fmt.Errorf("table %s has no %q column", table, field)
}

// atoiOrZero parses a numeric cell; empty or non-numeric cells read as 0.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// orderCells lays out a row following header.
func orderCells(header []string, values map[string]string) []string {
	cells := make([]string, len(header))
	for i, name := range header {
		v, ok := values[name]
		if !ok {
			v = values[strings.TrimSpace(name)]
		}
		cells[i] = v
	}
	return cells
}

// overlay returns a copy of base with every field of top written over it.
func overlay(base, top interfaces.Row) interfaces.Row {
	out := make(interfaces.Row, len(base)+len(top))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range top {
		out[k] = v
	}
	return out
}
