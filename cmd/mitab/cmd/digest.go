package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ViktorMorozov/mitab"
)

var digestAlg string

var algorithms = map[string]int{
	"xxh3":    mitab.AlgXXHash3,
	"fnv1a":   mitab.AlgFNV1a,
	"blake2b": mitab.AlgBlake2b,
}

var digestCmd = &cobra.Command{
	Use:   "digest FILE...",
	Short: "Print the content digest and line count of each file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if digestAlg != "" {
			alg, ok := algorithms[digestAlg]
			if !ok {
				return fmt.Errorf("%w: %s", mitab.ErrInvalidAlgorithm, digestAlg)
			}
			cfg.HashAlgorithm = alg
		}

		for _, path := range args {
			f, err := mitab.OpenFile(path, "r", cfg)
			if err != nil {
				return err
			}
			for {
				_, err = f.NextLine()
				if err != nil {
					break
				}
			}
			if !errors.Is(err, io.EOF) {
				f.Close()
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %d  %s\n", f.Sum(), f.LineNumber(), path)
			f.Close()
		}
		return nil
	},
}

func init() {
	digestCmd.Flags().StringVar(&digestAlg, "alg", "", "digest algorithm: xxh3, fnv1a or blake2b")
	rootCmd.AddCommand(digestCmd)
}
