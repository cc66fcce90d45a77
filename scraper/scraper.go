package scraper

import (
	"cine-match/errs"
	"fmt"
	"log"
	"net/http"

	"github.com/gocolly/colly"
)

type ScraperInterface interface {
	Fetch(url string) ([]byte, error)
}

type Scraper struct{}

// Fetch downloads the raw body at url. A 404 response is reported as
// errs.ErrNotFound so callers can treat it like a missing file.
func (s *Scraper) Fetch(url string) ([]byte, error) {
	// A fresh collector per call; colly refuses to revisit a URL otherwise
	c := colly.NewCollector()
	// Catalogs can exceed colly's 10 MiB default, which truncates silently
	c.MaxBodySize = 0

	var (
		body       []byte
		statusCode int
	)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "application/json")
		log.Println("Fetching:", r.URL)
	})

	c.OnResponse(func(r *colly.Response) {
		log.Println("Response received:", r.StatusCode)
		statusCode = r.StatusCode
		body = r.Body
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			statusCode = r.StatusCode
		}
	})

	if err := c.Visit(url); err != nil {
		if statusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %w", url, errs.ErrNotFound)
		}
		if statusCode != 0 {
			return nil, fmt.Errorf("unexpected status %d: %w", statusCode, err)
		}
		return nil, err
	}

	return body, nil
}

func NewScraper() ScraperInterface {
	return &Scraper{}
}
