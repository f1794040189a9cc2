package cmd

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/GayathriPCh/LoLCode-AI/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing chat, debug_code, roast_code and list_personas tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := setupLogger(cfg)

		proxy, err := createProxyFromConfig(cfg, logger)
		if err != nil {
			return err
		}
		warnMissingAPIKey(cfg, logger)

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		logger.Info("lolcode MCP server started on stdio", "provider", cfg.Provider, "model", proxy.Model())

		srv := mcpserver.NewServer(proxy)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
