package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
)

func newLabDaysCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labdays [weekday...]",
		Short: "Show or set the recurring lab weekdays",
		Long: "Without arguments, shows the configured lab weekdays. With " +
			"weekday names (e.g. tuesday thursday), replaces them. Use " +
			"\"none\" to clear.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				cfg, err := app.Plan.GetConfig(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Lab days: %s\n", formatter.Bold(weekdayList(cfg.DefaultLabDays)))
				return nil
			}

			var days []time.Weekday
			if !(len(args) == 1 && args[0] == "none") {
				for _, arg := range args {
					d, err := domain.ParseWeekday(arg)
					if err != nil {
						return err
					}
					days = append(days, d)
				}
			}

			cfg, err := app.Plan.SetLabDays(ctx, days)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Lab days set to %s\n", formatter.Bold(weekdayList(cfg.DefaultLabDays)))
			return nil
		},
	}
	return cmd
}
