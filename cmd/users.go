package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/GayathriPCh/LoLCode-AI/internal/auth"
)

var (
	userEmail       string
	userPassword    string
	userDisplayName string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage local accounts",
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account in the local database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := setupLogger(cfg)

		if userEmail == "" {
			userEmail, err = (&promptui.Prompt{Label: "Email"}).Run()
			if err != nil {
				return fmt.Errorf("email: %w", err)
			}
		}
		if userPassword == "" {
			userPassword, err = (&promptui.Prompt{
				Label: "Password",
				Mask:  '*',
				Validate: func(s string) error {
					if len(s) < auth.MinPasswordLength {
						return auth.ErrWeakPassword
					}
					return nil
				},
			}).Run()
			if err != nil {
				return fmt.Errorf("password: %w", err)
			}
		}

		database, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		svc := auth.NewService(auth.NewStore(database), cfg.SessionTTL, logger)
		u, err := svc.SignUp(context.Background(), userEmail, userPassword, userDisplayName)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", u.Email, u.ID)
		return nil
	},
}

func init() {
	usersCreateCmd.Flags().StringVar(&userEmail, "email", "", "account email")
	usersCreateCmd.Flags().StringVar(&userPassword, "password", "", "account password (prompted when empty)")
	usersCreateCmd.Flags().StringVar(&userDisplayName, "name", "", "display name")
	usersCmd.AddCommand(usersCreateCmd)
	rootCmd.AddCommand(usersCmd)
}
