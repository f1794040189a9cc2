package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GayathriPCh/LoLCode-AI/internal/chat"
	"github.com/GayathriPCh/LoLCode-AI/internal/llm"
	"github.com/GayathriPCh/LoLCode-AI/internal/persona"
)

var (
	chatPersona string
	chatMode    string
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send one message and print the reply",
	Long: `Sends a single message through the completion proxy and prints the reply.
With no arguments the message is read from stdin, so code can be piped in:

  cat solution.py | lolcode chat --mode roast --persona BugFather`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := chat.ParseMode(chatMode)
		if err != nil {
			return err
		}

		input := strings.Join(args, " ")
		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			input = string(data)
		}

		prompt, err := chat.BuildPrompt(mode, chatPersona, input)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := setupLogger(cfg)

		proxy, err := createProxyFromConfig(cfg, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		resp, err := proxy.Handle(ctx, chat.Request{
			Messages: []llm.Message{{Role: llm.RoleUser, Content: prompt}},
			Persona:  chatPersona,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), resp.Content())
		return nil
	},
}

func init() {
	chatCmd.Flags().StringVarP(&chatPersona, "persona", "p", persona.Default, "persona to answer as")
	chatCmd.Flags().StringVarP(&chatMode, "mode", "m", string(chat.ModeChat), "prompt mode: chat, debug or roast")
	rootCmd.AddCommand(chatCmd)
}
