package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
)

func newInitCmd(app *App) *cobra.Command {
	var startFlag, endFlag string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or update the schedule configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := app.Plan.Init(ctx)
			if err != nil {
				return err
			}

			if startFlag != "" || endFlag != "" {
				start, end := cfg.StartDate, cfg.EndDate
				if startFlag != "" {
					if start, err = domain.ParseDate(startFlag); err != nil {
						return err
					}
				}
				if endFlag != "" {
					if end, err = domain.ParseDate(endFlag); err != nil {
						return err
					}
				}
				if cfg, err = app.Plan.SetDateRange(ctx, start, end); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Schedule"))
			fmt.Fprintf(out, "%s to %s\n",
				formatter.Bold(domain.DateKey(cfg.StartDate)),
				formatter.Bold(domain.DateKey(cfg.EndDate)))
			fmt.Fprintf(out, "Lab days: %s\n", formatter.Dim(weekdayList(cfg.DefaultLabDays)))
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "plan start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endFlag, "end", "", "plan end date (YYYY-MM-DD)")
	return cmd
}

func weekdayList(days []time.Weekday) string {
	if len(days) == 0 {
		return "none"
	}
	s := ""
	for i, d := range days {
		if i > 0 {
			s += ", "
		}
		s += domain.WeekdayName(d)
	}
	return s
}
