package cmd

import (
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/ViktorMorozov/mitab"
)

// lineOut is one line of `cat --json` output.
type lineOut struct {
	N       int    `json:"n"`
	Line    string `json:"line"`
	Keyword string `json:"keyword,omitempty"`
}

var catJSON bool

var catCmd = &cobra.Command{
	Use:   "cat FILE",
	Short: "Print the lines of a MIF or MID file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := openRead(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		out := cmd.OutOrStdout()
		enc := json.NewEncoder(out)
		for {
			line, err := f.NextLine()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if !catJSON {
				fmt.Fprintln(out, line)
				continue
			}
			kw, _ := mitab.RecordKeyword(line)
			if err := enc.Encode(lineOut{N: f.LineNumber(), Line: line, Keyword: kw}); err != nil {
				return err
			}
		}
	},
}

func init() {
	catCmd.Flags().BoolVar(&catJSON, "json", false, "emit one JSON object per line")
	rootCmd.AddCommand(catCmd)
}
