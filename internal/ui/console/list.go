package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/gopak/csv2nfo/internal/catalog"
	"github.com/gopak/csv2nfo/internal/manager"
	"github.com/gopak/csv2nfo/internal/match"
)

// List prints what search would render for each kind, and where. Nothing is
// written.
func (c *ConsoleUI) List(term string, kinds []catalog.Kind, directory bool) error {
	if strings.TrimSpace(term) == "" {
		return manager.ErrEmptyTerm
	}
	if len(kinds) == 0 {
		kinds = manager.DefaultKinds
	}
	for _, k := range kinds {
		res, err := c.m.Lookup(k, term)
		if err != nil {
			return err
		}
		fmt.Fprint(c.out, c.renderList(k, res, directory))
	}
	return nil
}

func (c *ConsoleUI) renderList(k catalog.Kind, res match.Result, directory bool) string {
	var b strings.Builder
	heading := k.Label()
	if res.Exact {
		heading += " (exact)"
	}
	b.WriteString(text.Bold.Sprint(heading) + "\n")
	if res.Empty() {
		b.WriteString(text.FgHiBlack.Sprint("no matches") + "\n\n")
		return b.String()
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Line", "Title", "Year", "File"})
	for _, row := range res.Rows {
		title, _ := row.Get(titleKey(k))
		year, _ := row.Get("year")
		file, err := c.m.PlannedPath(k, row, directory)
		if err != nil {
			file = text.FgRed.Sprint(err.Error())
		}
		tw.AppendRow(table.Row{row.Line, title, year, file})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n\n")
	return b.String()
}

func titleKey(k catalog.Kind) string {
	if k == catalog.KindTvShow || k == catalog.KindEpisode {
		return "show_title"
	}
	return "title"
}
