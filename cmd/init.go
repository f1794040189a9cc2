package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GayathriPCh/LoLCode-AI/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize lolcode configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to pick a completion provider and server settings, and writes them to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
