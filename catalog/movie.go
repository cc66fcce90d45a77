package catalog

import (
	"fmt"
	"strconv"
)

// Movie is one catalog record
type Movie struct {
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Genre  Genre   `json:"genre"`
	Rating float64 `json:"rating"`
}

// String renders the movie as a recommendation line:
// "<title> (<year>) - <genre> - Rating: <rating>"
func (m Movie) String() string {
	return fmt.Sprintf("%s (%d) - %s - Rating: %s", m.Title, m.Year, m.Genre, FormatRating(m.Rating))
}

// FormatRating prints a rating in its shortest form (7.5, 6)
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}
