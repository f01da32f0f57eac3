package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

var documentNumberPattern = regexp.MustCompile(`^(\d{4})-(\d{3,})$`)

// ParseDocumentNumber splits a YYYY-NNN number. ok is false for anything else.
func ParseDocumentNumber(number string) (year, seq int, ok bool) {
	m := documentNumberPattern.FindStringSubmatch(number)
	if m == nil {
		return 0, 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	seq, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return year, seq, true
}

// FormatDocumentNumber renders year and seq as YYYY-NNN.
func FormatDocumentNumber(year, seq int) string {
	return fmt.Sprintf("%04d-%03d", year, seq)
}

// NextDocumentNumber returns one more than the highest sequence used in year.
// Numbers of other years and malformed numbers are ignored.
func NextDocumentNumber(existing []string, year int) string {
	highest := 0
	for _, n := range existing {
		y, seq, ok := ParseDocumentNumber(n)
		if !ok || y != year {
			continue
		}
		if seq > highest {
			highest = seq
		}
	}
	return FormatDocumentNumber(year, highest+1)
}
