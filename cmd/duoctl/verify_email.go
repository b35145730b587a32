package main

import (
	"context"
	"fmt"

	"mvpduo/internal/database"
	"mvpduo/internal/domain"
	"mvpduo/internal/logger"
	"mvpduo/internal/repository"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verifyEmailCmd = &cobra.Command{
	Use:   "verify-email USER_ID",
	Short: "Mark a user's email as verified",
	Long:  "Marks a user's email as verified. Verification normally arrives from the hosted auth service; this is for local development and support. With --email, a missing profile is created in the same transaction.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := args[0]
		if _, err := uuid.Parse(userID); err != nil {
			return fmt.Errorf("user id must be a uuid: %w", err)
		}
		email, _ := cmd.Flags().GetString("email")

		db, err := database.NewSQLXDB(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		verifications := repository.NewSQLXVerificationRepository(db)
		profiles := repository.NewSQLXProfileRepository(db)
		created := false
		err = repository.NewTransactionManagerAdapter(db).WithTransaction(cmd.Context(), func(ctx context.Context) error {
			if err := verifications.MarkEmailVerified(ctx, userID, email); err != nil {
				return err
			}
			if email == "" {
				return nil
			}
			_, err := profiles.GetUserProfile(ctx, userID)
			if !domain.HasCode(err, domain.ErrNotFound) {
				return err
			}
			_, err = profiles.CreateUserProfile(ctx, userID, email)
			created = err == nil
			return err
		})
		if err != nil {
			return err
		}
		logger.Get().Info("Email marked verified", zap.String("userID", userID), zap.Bool("profileCreated", created))
		return nil
	},
}

func init() {
	verifyEmailCmd.Flags().String("email", "", "Email address to record")
}
