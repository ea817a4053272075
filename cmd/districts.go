package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Shivanand-hulikatti/event-finder/internal/district"
	"github.com/spf13/cobra"
)

var districtsCmd = &cobra.Command{
	Use:   "districts [query]",
	Short: "List provinces or search districts",
	Long: `Without a query, districts lists the provinces. With one it searches
district names by consonants and vowels, so "ㄱㄴ" or "강나" both find 강남구.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		defer w.Flush()

		if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
			for _, p := range district.LevelOne() {
				fmt.Fprintf(w, "%d\t%s\n", p.ID, p.Name)
			}
			return nil
		}
		for _, m := range district.Search(args[0]) {
			fmt.Fprintf(w, "%d\t%s\t%s\n", m.ID, m.ParentName, m.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(districtsCmd)
}
