// Command elemq selects elements from an HTML file and filters, sorts, and
// paginates them by text.
//
//	elemq run page.html --tag li --prefix a --asc --limit 10
//	elemq run page.html --tag td --plan plan.yaml
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "elemq",
	Short:         "Query HTML elements by their text",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("elemq: ")

	rootCmd.AddCommand(newRunCmd())
	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Select elements and print their text, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			opts.hasLimit = cmd.Flags().Changed("limit")
			opts.hasGTE = cmd.Flags().Changed("gte")
			opts.hasLTE = cmd.Flags().Changed("lte")

			q, err := buildQuery(opts)
			if err != nil {
				return err
			}
			texts, err := q.Texts()
			if err != nil {
				return err
			}
			for _, t := range texts {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.tag, "tag", "", "tag name to select (default: every element)")
	f.StringVar(&opts.within, "within", "", "only select inside the first element with this tag")
	f.StringVar(&opts.by, "by", "text", "extractor: text, owntext, or attr:<name>")
	f.StringVar(&opts.plan, "plan", "", "YAML plan file, applied before the flag commands")
	f.StringVar(&opts.prefix, "prefix", "", "keep elements whose text starts with this")
	f.StringVar(&opts.suffix, "suffix", "", "keep elements whose text ends with this")
	f.IntVar(&opts.gte, "gte", 0, "keep elements whose text is an integer >= this")
	f.IntVar(&opts.lte, "lte", 0, "keep elements whose text is an integer <= this")
	f.BoolVar(&opts.asc, "asc", false, "sort ascending")
	f.BoolVar(&opts.desc, "desc", false, "sort descending")
	f.StringVar(&opts.collation, "collation", "", "BCP 47 language tag used to compare non-numeric text")
	f.IntVar(&opts.offset, "offset", 0, "skip this many elements")
	f.IntVar(&opts.limit, "limit", 0, "keep at most this many elements")
	cmd.MarkFlagsMutuallyExclusive("asc", "desc")

	return cmd
}
