package prompt

import (
	"bufio"
	"cine-match/errs"
	"cine-match/recommend"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Questions, asked in this order
const (
	GenresQuestion    = "Enter your favorite genres (comma separated): "
	MinRatingQuestion = "Enter minimum rating: "
	StartYearQuestion = "Enter start year: "
	EndYearQuestion   = "Enter end year: "
)

// Prompter asks questions on out and reads one line answers from in
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes question and blocks until a line is read. The trailing
// newline is stripped.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", &errs.AccessError{Op: "write", Location: "prompt", Err: err}
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("input closed before answering %q", strings.TrimSpace(question))
		}
		return "", &errs.AccessError{Op: "read", Location: "prompt", Err: err}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// CollectPreferences asks for genres, minimum rating, start year and end
// year. Each numeric answer is validated as soon as it is read.
func (p *Prompter) CollectPreferences() (recommend.Preferences, error) {
	genreInput, err := p.Ask(GenresQuestion)
	if err != nil {
		return recommend.Preferences{}, err
	}

	ratingInput, err := p.Ask(MinRatingQuestion)
	if err != nil {
		return recommend.Preferences{}, err
	}
	minRating, err := recommend.ParseRating(ratingInput)
	if err != nil {
		return recommend.Preferences{}, err
	}

	startInput, err := p.Ask(StartYearQuestion)
	if err != nil {
		return recommend.Preferences{}, err
	}
	startYear, err := recommend.ParseYear("start year", startInput, recommend.DefaultStartYear)
	if err != nil {
		return recommend.Preferences{}, err
	}

	endInput, err := p.Ask(EndYearQuestion)
	if err != nil {
		return recommend.Preferences{}, err
	}
	endYear, err := recommend.ParseYear("end year", endInput, recommend.DefaultEndYear)
	if err != nil {
		return recommend.Preferences{}, err
	}

	return recommend.NewPreferences(recommend.SplitGenres(genreInput), minRating, startYear, endYear), nil
}
