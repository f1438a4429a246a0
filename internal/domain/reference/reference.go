// Package reference derives the quote reference numbers: the RT day serial,
// the per-day sequence and the visual id that combines both with the issue date.
package reference

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gestao_integrada/internal/domain/entities"
)

// epochUnixDays is 1899-12-30 expressed in days since 1970-01-01,
// the zero of spreadsheet date serials.
const epochUnixDays = -25569

const visualDateLayout = "02012006"

var ErrMalformedVisualID = errors.New("malformed visual id")

// DaySerial returns the number of days between 1899-12-30 and the calendar date of d.
// Only the year, month and day of d (in its own location) are used.
func DaySerial(d time.Time) int {
	y, m, day := d.Date()
	midnight := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix()/86400) - epochUnixDays
}

// NextSequence returns the next per-day sequence for quotes issued on onDate.
//
// Quotes are matched by their stored issue date text against onDate formatted
// as dd/mm/yyyy. Sequences that are not positive (empty or non-numeric cells)
// are ignored. The result is stale-snapshot sensitive: two callers reading the
// same snapshot get the same number.
func NextSequence(existing []entities.Quote, onDate time.Time) int {
	day := onDate.Format(entities.DateLayout)
	highest := 0
	for _, q := range existing {
		if strings.TrimSpace(q.IssueDate) != day {
			continue
		}
		if q.Sequence > highest {
			highest = q.Sequence
		}
	}
	return highest + 1
}

// BuildVisualID formats "{serial}-{seq}-{ddmmyyyy}".
func BuildVisualID(serial, seq int, d time.Time) string {
	return fmt.Sprintf("%d-%d-%s", serial, seq, d.Format(visualDateLayout))
}

// ParseVisualID splits a visual id back into its serial, sequence and date.
func ParseVisualID(id string) (serial int, seq int, d time.Time, err error) {
	parts := strings.Split(strings.TrimSpace(id), "-")
	if len(parts) != 3 {
		return 0, 0, time.Time{}, fmt.Errorf("%w: %q", ErrMalformedVisualID, id)
	}
	if serial, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("%w: serial %q", ErrMalformedVisualID, parts[0])
	}
	if seq, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("%w: sequence %q", ErrMalformedVisualID, parts[1])
	}
	if d, err = time.Parse(visualDateLayout, parts[2]); err != nil {
		return 0, 0, time.Time{}, fmt.Errorf("%w: date %q", ErrMalformedVisualID, parts[2])
	}
	return serial, seq, d, nil
}
