package recommend

import (
	"cine-match/errs"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
)

const (
	DefaultMinRating = 0
	DefaultStartYear = 1900
	DefaultEndYear   = 2023
)

// YearRange is an inclusive range of release years
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether start <= year <= end. An inverted range
// contains nothing.
func (r YearRange) Contains(year int) bool {
	return r.Start <= year && year <= r.End
}

// Preferences are the filter criteria chosen by the user
type Preferences struct {
	Genres    []string  `json:"genres"`
	MinRating float64   `json:"minRating"`
	YearRange YearRange `json:"yearRange"`
}

// DefaultPreferences matches every movie rated 0 or more released 1900-2023
func DefaultPreferences() Preferences {
	return Preferences{
		Genres:    []string{},
		MinRating: DefaultMinRating,
		YearRange: YearRange{Start: DefaultStartYear, End: DefaultEndYear},
	}
}

// NewPreferences builds preferences from already validated values.
// Genres are copied; blank and repeated names are dropped.
func NewPreferences(genres []string, minRating float64, startYear, endYear int) Preferences {
	return Preferences{
		Genres:    normalizeGenres(genres),
		MinRating: minRating,
		YearRange: YearRange{Start: startYear, End: endYear},
	}
}

// SplitGenres splits a comma separated answer into trimmed, non-empty names
func SplitGenres(input string) []string {
	return normalizeGenres(strings.Split(input, ","))
}

func normalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" || slices.Contains(out, g) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// ParseRating parses a minimum rating answer. A blank answer yields the
// default rating.
func ParseRating(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return DefaultMinRating, nil
	}

	rating, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, &errs.ValidationError{Field: "minimum rating", Input: input, Err: numberError(err, "not a number")}
	}
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return 0, &errs.ValidationError{Field: "minimum rating", Input: input, Err: errors.New("must be a finite number")}
	}
	return rating, nil
}

// ParseYear parses a year answer for field. A blank answer yields def.
func ParseYear(field, input string, def int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return def, nil
	}

	year, err := strconv.Atoi(input)
	if err != nil {
		return 0, &errs.ValidationError{Field: field, Input: input, Err: numberError(err, "not a whole number")}
	}
	return year, nil
}

// numberError tells a syntactically valid but unrepresentable number apart
// from text that is not a number at all
func numberError(err error, syntax string) error {
	if errors.Is(err, strconv.ErrRange) {
		return errors.New("out of range")
	}
	return errors.New(syntax)
}
