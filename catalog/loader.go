package catalog

import (
	"cine-match/errs"
	"cine-match/scraper"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
)

// Loader reads a movie catalog from a file path or an http(s) URL
type Loader struct {
	fetcher scraper.ScraperInterface
}

// NewLoader creates a loader. fetcher serves URL locations and may be
// nil, in which case every location is treated as a file path.
func NewLoader(fetcher scraper.ScraperInterface) *Loader {
	return &Loader{fetcher: fetcher}
}

// Load returns the movies stored at location in their stored order.
// A missing location yields an empty catalog.
func (l *Loader) Load(location string) ([]Movie, error) {
	var (
		data []byte
		err  error
	)

	if l.fetcher != nil && isURL(location) {
		data, err = l.fetcher.Fetch(location)
	} else {
		data, err = os.ReadFile(location)
		if errors.Is(err, fs.ErrNotExist) {
			err = errs.ErrNotFound
		}
	}

	if errors.Is(err, errs.ErrNotFound) {
		log.Printf("Catalog %s not found, starting with an empty catalog", location)
		return []Movie{}, nil
	}
	if err != nil {
		return nil, &errs.AccessError{Op: "read", Location: location, Err: err}
	}

	return Decode(location, data)
}

// LoadFile loads a catalog from the local filesystem
func LoadFile(path string) ([]Movie, error) {
	return NewLoader(nil).Load(path)
}

// Decode parses catalog JSON. location only labels errors.
func Decode(location string, data []byte) ([]Movie, error) {
	var movies []Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, &errs.ParseError{Location: location, Err: err}
	}
	if movies == nil {
		movies = []Movie{}
	}
	return movies, nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
