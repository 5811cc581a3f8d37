package console

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gopak/csv2nfo/internal/manager"
	"github.com/gopak/csv2nfo/internal/match"
)

// Search renders every match of req. An ambiguous show lookup without a year
// lists the candidates and asks for one, then runs again.
func (c *ConsoleUI) Search(req manager.Request) error {
	rep, err := c.m.Run(req)
	var amb *match.AmbiguousMatchError
	if errors.As(err, &amb) && req.Year == "" && c.askYear != nil {
		fmt.Fprint(c.out, renderCandidates(amb))
		year, perr := c.askYear(amb)
		if perr != nil {
			return perr
		}
		req.Year = year
		rep, err = c.m.Run(req)
	}
	if err != nil {
		return err
	}
	printReport(rep)
	return nil
}

// IMDb renders the movie with the given IMDb id.
func (c *ConsoleUI) IMDb(id string, directory bool) error {
	rep, err := c.m.RenderIMDb(id, directory)
	if err != nil {
		return err
	}
	printReport(rep)
	return nil
}

func renderCandidates(amb *match.AmbiguousMatchError) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Line", amb.Column, "Year"})
	for i, row := range amb.Candidates {
		title, _ := row.Get(amb.Column)
		year, _ := row.Get("year")
		tw.AppendRow(table.Row{i + 1, row.Line, title, year})
	}
	return tw.Render() + "\n"
}
