package cmd

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ViktorMorozov/mitab"
)

var recordsJSON bool

var recordsCmd = &cobra.Command{
	Use:   "records FILE",
	Short: "List the geometry records of a MIF file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openRead(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		records, err := mitab.ScanRecords(f)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if recordsJSON {
			enc := json.NewEncoder(out)
			for _, r := range records {
				if err := enc.Encode(r); err != nil {
					return err
				}
			}
			return nil
		}

		counts := make(map[string]int)
		for _, r := range records {
			fmt.Fprintf(out, "%6d  %-9s  %d\n", r.Line, r.Keyword, len(r.Lines))
			counts[r.Keyword]++
		}
		for _, kw := range mitab.Keywords() {
			if n := counts[kw]; n > 0 {
				fmt.Fprintf(out, "%s: %d\n", kw, n)
			}
		}
		return nil
	},
}

func init() {
	recordsCmd.Flags().BoolVar(&recordsJSON, "json", false, "emit one JSON object per record")
	rootCmd.AddCommand(recordsCmd)
}
