package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/thrivetrack/backend/internal/config"
	"github.com/thrivetrack/backend/internal/report"
	"github.com/thrivetrack/backend/internal/service"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print mood insights for a user",
	Long:  `Derive the mood insights for one user and range from the configured store and print them.`,
	RunE:  runReport,
}

var (
	reportUser  string
	reportRange string
)

func init() {
	reportCmd.Flags().StringVarP(&reportUser, "user", "u", "", "User ID (defaults to insights.default_user_id)")
	reportCmd.Flags().StringVarP(&reportRange, "range", "r", "week", "Time range: week, month or all")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setupLogger(cfg)

	userID := reportUser
	if userID == "" {
		userID = cfg.Insights.DefaultUserID
	}

	repo, closer, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closer.Close()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	visits := service.NewVisitStore(1, cfg.Insights.VisitTTL, clock)
	insights := service.NewMoodInsightsService(repo, visits, clock, loc)

	r, err := insights.GetInsights(cmd.Context(), userID, reportRange, "")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.Render(userID, r))
	return nil
}
