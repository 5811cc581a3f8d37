package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/csv2nfo/internal/config"
	"github.com/gopak/csv2nfo/internal/manager"
	"github.com/gopak/csv2nfo/internal/ui/console"
)

func init() {
	var directory bool
	cmd := &cobra.Command{
		Use:   "imdb <id>",
		Short: "Write the NFO file of the movie with this IMDb id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			m := manager.New(cfg)
			defer writeMetrics(m, cfg)
			return console.NewConsoleUI(m).IMDb(args[0], directory)
		},
	}
	cmd.Flags().BoolVarP(&directory, "directory", "d", false, "write into a \"Title (Year)\" folder")
	rootCmd.AddCommand(cmd)
}
