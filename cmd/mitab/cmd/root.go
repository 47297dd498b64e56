package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ViktorMorozov/mitab"
)

var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mitab",
	Short: "Inspect and copy MapInfo MIF/MID text files",
	Long: `mitab reads MIF and MID files line by line. It lists geometry records,
prints lines, digests content and copies files, optionally through zstd.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "JSON configuration file")
}

// loadConfig returns the --config file contents, or the zero Config.
func loadConfig() (mitab.Config, error) {
	if configFile == "" {
		return mitab.Config{}, nil
	}
	return mitab.LoadConfig(configFile)
}

// openRead opens path for reading with the global configuration.
func openRead(path string) (*mitab.LineFile, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return mitab.OpenFile(path, "r", cfg)
}
