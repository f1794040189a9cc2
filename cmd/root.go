package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GayathriPCh/LoLCode-AI/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lolcode",
	Short: "Leetcode-slang AI chat with personas that roast your code",
	Long: `lolcode AI proxies your chat to a hosted language model behind one of
four personas (LeetGuru, BugFather, FAANG Interviewer, Meme Lord). It serves
a web chat UI with debug and roast modes, a JSON chat API, and MCP tools for
AI agents.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
