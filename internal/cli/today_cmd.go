package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

func newTodayCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the study plan for today (or a given date)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.DailyPlanRequest{}
			if dateFlag != "" {
				date, err := domain.ParseDate(dateFlag)
				if err != nil {
					return err
				}
				req.Date = &date
			}

			plan, err := app.Planner.GenerateDailyPlan(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDailyPlan(plan, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "plan date (YYYY-MM-DD, default today)")
	return cmd
}
