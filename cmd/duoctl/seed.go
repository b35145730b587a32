package main

import (
	"context"
	"fmt"
	"sort"

	"mvpduo/internal/adapter"
	"mvpduo/internal/cache"
	"mvpduo/internal/database"
	"mvpduo/internal/domain"
	"mvpduo/internal/logger"
	"mvpduo/internal/repository"
	"mvpduo/internal/seed"
	"mvpduo/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed PATH",
	Short: "Load question banks from a YAML file or directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		return runSeed(cmd.Context(), args[0], domain.QuestionStatus(status), dryRun)
	},
}

func init() {
	seedCmd.Flags().String("status", string(domain.QuestionApproved), "Review status for seeded questions (approved, pending)")
	seedCmd.Flags().Bool("dry-run", false, "Validate the banks without writing")
}

func runSeed(ctx context.Context, path string, status domain.QuestionStatus, dryRun bool) error {
	if status != domain.QuestionApproved && status != domain.QuestionPending {
		return fmt.Errorf("unsupported status %q", status)
	}
	appLogger := logger.Get()

	questions, err := seed.LoadPath(path, status)
	if err != nil {
		return err
	}
	counts := seed.CountByUnit(questions)
	units := make([]string, 0, len(counts))
	for unit := range counts {
		units = append(units, unit)
	}
	sort.Strings(units)
	for _, unit := range units {
		fmt.Printf("%-40s %d\n", unit, counts[unit])
	}
	if dryRun || len(questions) == 0 {
		appLogger.Info("Seed finished without writing", zap.Int("questions", len(questions)), zap.Bool("dryRun", dryRun))
		return nil
	}

	db, err := database.NewSQLXDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	questionRepo := repository.NewSQLXQuestionRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	err = txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return questionRepo.SaveQuestions(txCtx, questions)
	})
	if err != nil {
		return fmt.Errorf("failed to save questions: %w", err)
	}
	appLogger.Info("Seeded questions", zap.Int("questions", len(questions)), zap.Int("units", len(units)))

	invalidateQuestionSets(ctx, questionRepo, questions)
	return nil
}

// invalidateQuestionSets drops cached sets for the seeded units so new content is
// served before the TTL expires. Seeding still succeeds without Redis.
func invalidateQuestionSets(ctx context.Context, repo domain.QuestionRepository, questions []domain.Question) {
	if cfg.Redis.Address == "" {
		return
	}
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Get().Warn("Skipping cache invalidation", zap.Error(err))
		return
	}
	defer redisClient.Close()
	sets := service.NewQuestionSetCache(adapter.NewRedisCacheAdapter(redisClient), repo, cfg.Cache.QuestionTTL)

	seen := make(map[domain.Position]bool)
	for _, q := range questions {
		unit := q.Position()
		if seen[unit] {
			continue
		}
		seen[unit] = true
		n, err := sets.InvalidateUnit(ctx, unit)
		if err != nil {
			logger.Get().Warn("Failed to invalidate question sets", zap.Stringer("unit", unit), zap.Error(err))
			continue
		}
		logger.Get().Debug("Invalidated question sets", zap.Stringer("unit", unit), zap.Int("keys", n))
	}
}
