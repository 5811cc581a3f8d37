package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/csv2nfo/internal/config"
	"github.com/gopak/csv2nfo/internal/manager"
	"github.com/gopak/csv2nfo/internal/ui/console"
)

func init() {
	var kinds kindFlags
	var directory, noPrompt bool
	var year string
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Write an NFO file for every row matching term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			m := manager.New(cfg)
			defer writeMetrics(m, cfg)
			ui := console.NewConsoleUI(m)
			if noPrompt {
				ui.NoPrompt()
			}
			return ui.Search(manager.Request{
				Term:      args[0],
				Kinds:     kinds.kinds(),
				Directory: directory,
				Year:      year,
			})
		},
	}
	kinds.register(cmd)
	cmd.Flags().BoolVarP(&directory, "directory", "d", false, "write into per-title folders (episodes also per season)")
	cmd.Flags().StringVar(&year, "year", "", "pick the show of this year when several match")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "fail instead of asking for a year")
	rootCmd.AddCommand(cmd)
}
