package main

import (
	"fmt"
	"time"

	"mvpduo/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign an access token for local development",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user-id")
		email, _ := cmd.Flags().GetString("email")
		ttl, _ := cmd.Flags().GetDuration("ttl")
		if userID == "" {
			userID = uuid.NewString()
		}

		authService, err := service.NewAuthService(cfg.Auth)
		if err != nil {
			return err
		}
		token, err := authService.CreateJWT(cmd.Context(), userID, email, ttl)
		if err != nil {
			return err
		}
		fmt.Printf("user_id: %s\ntoken:   %s\n", userID, token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("user-id", "", "User id (uuid); a random one when empty")
	tokenCmd.Flags().String("email", "", "Email claim")
	tokenCmd.Flags().Duration("ttl", time.Hour, "Token lifetime")
}
