package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ViktorMorozov/mitab"
)

var copyCmd = &cobra.Command{
	Use:   "copy SRC DST",
	Short: "Copy a MIF or MID file line by line",
	Long: `copy rewrites SRC into DST with normalised "\n" line endings. A DST ending
in .zst is written zstd-compressed; a compressed SRC is decompressed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		src, err := mitab.OpenFile(args[0], "r", cfg)
		if err != nil {
			return err
		}
		defer src.Close()

		dst, err := mitab.OpenFile(args[1], "w", cfg)
		if err != nil {
			return err
		}
		defer dst.Close()

		n, err := mitab.Copy(dst, src)
		if err != nil {
			return err
		}
		if err := dst.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d lines  %s\n", n, dst.Sum())
		return dst.Close()
	},
}

func init() {
	rootCmd.AddCommand(copyCmd)
}
