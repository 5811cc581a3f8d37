package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/gopak/csv2nfo/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate merged configuration against the JSON Schema",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		fmt.Println("Configuration is valid")
		fmt.Println(renderDatasets(cfg))
	},
}

func renderDatasets(cfg config.Config) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Kind", "File", "Search", "Column"})
	for _, d := range cfg.Datasets {
		path := cfg.DatasetPath(d)
		if _, err := os.Stat(path); err != nil {
			path += " (missing)"
		}
		tw.AppendRow(table.Row{d.Kind, path, d.Search.Mode, d.Search.Column})
	}
	return tw.Render()
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
