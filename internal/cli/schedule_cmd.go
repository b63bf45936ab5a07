package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/contract"
	"github.com/alexanderramin/studyplan/internal/domain"
)

func newScheduleCmd(app *App) *cobra.Command {
	var fromFlag string
	var enrichFlag bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate the multi-week schedule for the remaining topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.ScheduleRequest{Enrich: enrichFlag}
			if fromFlag != "" {
				from, err := domain.ParseDate(fromFlag)
				if err != nil {
					return err
				}
				req.From = &from
			}

			var stopSpinner func()
			if enrichFlag && app.interactive() {
				sp := formatter.NewSpinner(cmd.ErrOrStderr(), "asking the model for a refined ordering")
				sp.Start()
				stopSpinner = sp.Stop
			}

			resp, err := app.Planner.GenerateFullSchedule(cmd.Context(), req)
			if stopSpinner != nil {
				stopSpinner()
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "schedule start date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&enrichFlag, "ai", false, "refine the ordering with the configured model")
	return cmd
}
