// Package input turns user-entered text into the values a search runs on.
package input

import (
	"strconv"
	"strings"
)

// ParseSequence parses comma separated integers. Blank fields are skipped,
// so "1, 2,,3," yields [1 2 3].
func ParseSequence(text string) ([]int, error) {
	fields := strings.Split(text, ",")
	values := make([]int, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, &ParseError{Field: "data", Position: i, Text: f, Err: ErrMalformedValue}
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}
	return values, nil
}

// ParseTarget parses a single integer.
func ParseTarget(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyTarget
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ParseError{Field: "target", Position: -1, Text: text, Err: ErrMalformedValue}
	}
	return v, nil
}

// FormatSequence is the inverse of ParseSequence.
func FormatSequence(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
