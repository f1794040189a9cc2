package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GayathriPCh/LoLCode-AI/internal/persona"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List the available personas",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, p := range persona.List() {
			fmt.Fprintf(out, "%s\n  %s\n\n", p.Label, p.Style)
		}
	},
}

func init() {
	rootCmd.AddCommand(personasCmd)
}
