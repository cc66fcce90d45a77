package main

import (
	"cine-match/catalog"
	"cine-match/storage"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderRuns(runs []storage.Run) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "When", "Mode", "Genres", "Min Rating", "Years", "Matches"})

	for _, run := range runs {
		genres := "any"
		if len(run.Preferences.Genres) > 0 {
			genres = strings.Join(run.Preferences.Genres, ", ")
		}
		tw.AppendRow(table.Row{
			run.ID,
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			run.Mode,
			genres,
			catalog.FormatRating(run.Preferences.MinRating),
			strconv.Itoa(run.Preferences.YearRange.Start) + "-" + strconv.Itoa(run.Preferences.YearRange.End),
			run.MatchCount,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 7, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderMatches(movies []catalog.Movie) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Title", "Year", "Genre", "Rating"})
	for _, m := range movies {
		tw.AppendRow(table.Row{m.Title, m.Year, m.Genre.String(), catalog.FormatRating(m.Rating)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderStats(stats map[string]int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Count"})
	tw.AppendRows([]table.Row{
		{"Total runs", stats["runs"]},
		{"Interactive runs", stats[storage.ModeInteractive]},
		{"Digest runs", stats[storage.ModeDigest]},
		{"Movies recommended", stats["matches"]},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
