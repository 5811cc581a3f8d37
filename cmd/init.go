package cmd

import (
	"bytes"
	"os"
	"path/filepath"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/gopak/csv2nfo/internal/assets"
	"github.com/gopak/csv2nfo/internal/logging"
)

func init() {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write the default " + assets.ConfigFileName,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			p := filepath.Join(dir, assets.ConfigFileName)
			written, err := assets.WriteDefaultConfigIfMissing(dir)
			if err != nil {
				return err
			}
			if written {
				logging.Success("created " + p)
				return nil
			}
			if !force {
				if err := survey.AskOne(&survey.Confirm{Message: p + " exists. Overwrite with defaults?", Default: false}, &force); err != nil {
					return err
				}
			}
			if !force {
				logging.Gray("kept " + p)
				return nil
			}
			if err := atomic.WriteFile(p, bytes.NewReader(assets.DefaultConfig)); err != nil {
				return err
			}
			if err := os.Chmod(p, 0o644); err != nil {
				return err
			}
			logging.Success("overwrote " + p)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file without asking")
	rootCmd.AddCommand(cmd)
}
