package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/csv2nfo/internal/config"
	"github.com/gopak/csv2nfo/internal/manager"
	"github.com/gopak/csv2nfo/internal/ui/console"
)

func init() {
	var kinds kindFlags
	var directory bool
	cmd := &cobra.Command{
		Use:   "list <term>",
		Short: "Show what search would write, without writing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := manager.New(config.Get())
			return console.NewConsoleUI(m).List(args[0], kinds.kinds(), directory)
		},
	}
	kinds.register(cmd)
	cmd.Flags().BoolVarP(&directory, "directory", "d", false, "show folder layout paths")
	rootCmd.AddCommand(cmd)
}
