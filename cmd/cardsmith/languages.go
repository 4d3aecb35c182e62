package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cardsmith/cardsmith/internal/core"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List registered languages",
		Run: func(cmd *cobra.Command, args []string) {
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tLANGUAGE\tNATIVE\tDIRECTION")
			for _, def := range core.All() {
				dir := "ltr"
				if def.RTL {
					dir = "rtl"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", def.Code, def.Label, def.NativeName, dir)
			}
			tw.Flush()
		},
	}
}
