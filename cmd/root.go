package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gopak/csv2nfo/internal/assets"
	"github.com/gopak/csv2nfo/internal/config"
	"github.com/gopak/csv2nfo/internal/logging"
	"github.com/gopak/csv2nfo/internal/manager"
)

var cfgFile string
var verbose bool
var metricsFile string
var version = "dev"

var rootCmd = &cobra.Command{
	Use:          "csv2nfo",
	Short:        "Render Kodi .nfo files from CSV media catalogs",
	SilenceUsage: true,
}

func Execute() error {
	defer logging.Close()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML file merged over the built-in defaults (default: ./"+assets.ConfigFileName+" when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show every match and written file")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write run counters to this file in Prometheus text format")
	rootCmd.Version = version
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	logging.SetVerbose(verbose)
	var files []string
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			logging.Error("config error: " + err.Error())
			os.Exit(1)
		}
		files = append(files, cfgFile)
	} else if _, err := os.Stat(assets.ConfigFileName); err == nil {
		files = append(files, assets.ConfigFileName)
	}
	cfg, err := config.LoadDefaultsAndFiles(assets.DefaultConfig, files)
	if err != nil {
		logging.Error("config error: " + err.Error())
		os.Exit(1)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		logging.Error("schema error: " + err.Error())
		os.Exit(1)
	}
	if err := logging.Init(cfg.LogFile); err != nil {
		logging.Warn("log file disabled: " + err.Error())
	}
	logging.Debug("config: " + configSource(files))
}

func configSource(files []string) string {
	if len(files) == 0 {
		return "built-in defaults"
	}
	return files[0]
}

// writeMetrics dumps the run's counters; the flag wins over metrics_file.
func writeMetrics(m *manager.Manager, cfg config.Config) {
	path := metricsFile
	if path == "" {
		path = cfg.MetricsFile
	}
	if err := m.Metrics().WriteTextfile(path); err != nil {
		logging.Warn("metrics: " + err.Error())
	}
}
