package blockchain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/block-atlas/pkg/store/csvfile"
)

// parseDate reads the row's calendar date and returns midnight UTC of that day, plus the number
// of leading fields the date occupied.
//
// Two shapes are accepted: `dd/mm/yyyy[ hh:mm:ss]` in the first field (the time of day is
// ignored), or day, month and year as the first three fields.
func parseDate(row csvfile.Row) (time.Time, int, error) {
	first, err := row.Field(0, "date")
	if err != nil {
		return time.Time{}, 0, err
	}

	var parts []string
	used := 1
	if strings.Contains(first, "/") {
		datePart, _, _ := strings.Cut(first, " ")
		parts = strings.Split(datePart, "/")
		if len(parts) != 3 {
			return time.Time{}, 0, row.Malformed(fmt.Sprintf("date %q is not dd/mm/yyyy", first), nil)
		}
	} else {
		if err := row.AtLeast(3); err != nil {
			return time.Time{}, 0, err
		}
		parts = row.Fields[:3]
		used = 3
	}

	var dmy [3]int
	names := [3]string{"day", "month", "year"}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, 0, row.Malformed(fmt.Sprintf("%s %q is not an integer", names[i], p), err)
		}
		dmy[i] = v
	}

	day, month, year := dmy[0], dmy[1], dmy[2]
	if month < 1 || month > 12 {
		return time.Time{}, 0, row.Malformed(fmt.Sprintf("invalid month %d", month), nil)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, 0, row.Malformed(fmt.Sprintf("invalid date %02d/%02d/%04d", day, month, year), nil)
	}

	return t, used, nil
}
