package recommend

import "cine-match/catalog"

// Matches reports whether m satisfies every criterion in p. An empty
// genre list accepts any genre.
func (p Preferences) Matches(m catalog.Movie) bool {
	return p.matchesGenre(m.Genre) &&
		m.Rating >= p.MinRating &&
		p.YearRange.Contains(m.Year)
}

func (p Preferences) matchesGenre(g catalog.Genre) bool {
	if len(p.Genres) == 0 {
		return true
	}
	for _, want := range p.Genres {
		if g.Contains(want) {
			return true
		}
	}
	return false
}

// Filter returns the movies matching p in catalog order. movies is not
// modified.
func Filter(movies []catalog.Movie, p Preferences) []catalog.Movie {
	matches := make([]catalog.Movie, 0)
	for _, m := range movies {
		if p.Matches(m) {
			matches = append(matches, m)
		}
	}
	return matches
}
