package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
)

func newConstraintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constraint",
		Short: "Manage day constraints (exams, holidays, lab days)",
	}

	cmd.AddCommand(
		newConstraintAddCmd(app),
		newConstraintListCmd(app),
		newConstraintRemoveCmd(app),
	)
	return cmd
}

func newConstraintAddCmd(app *App) *cobra.Command {
	var dateFlag, typeFlag, descFlag string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add or replace the constraint on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dateFlag == "" && app.interactive() {
				if err := constraintForm(&dateFlag, &typeFlag, &descFlag); err != nil {
					return err
				}
			}
			if dateFlag == "" {
				return fmt.Errorf("--date is required")
			}

			date, err := domain.ParseDate(dateFlag)
			if err != nil {
				return err
			}
			dayType, err := domain.ParseDayType(typeFlag)
			if err != nil {
				return err
			}

			c := &domain.DayConstraint{Date: date, Type: dayType, Description: descFlag}
			if err := app.Plan.AddConstraint(cmd.Context(), c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s marked as %s\n",
				formatter.Bold(domain.DateKey(date)),
				formatter.DayTypeBadge(string(dayType), false))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "constraint date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&typeFlag, "type", "holiday", "day type (college, lab, holiday, exam, weekend, available)")
	cmd.Flags().StringVar(&descFlag, "desc", "", "short description")
	return cmd
}

// constraintForm collects the constraint fields interactively.
func constraintForm(date, dayType, desc *string) error {
	if *dayType == "" {
		*dayType = string(domain.DayHoliday)
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder("2025-09-15").
				Value(date).
				Validate(func(s string) error {
					_, err := domain.ParseDate(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Day type").
				Options(
					huh.NewOption("Exam", string(domain.DayExam)),
					huh.NewOption("Holiday", string(domain.DayHoliday)),
					huh.NewOption("College", string(domain.DayCollege)),
					huh.NewOption("Lab", string(domain.DayLab)),
					huh.NewOption("Weekend", string(domain.DayWeekend)),
					huh.NewOption("Available", string(domain.DayAvailable)),
				).
				Value(dayType),
			huh.NewInput().
				Title("Description (optional)").
				Value(desc),
		),
	).WithShowHelp(false)
	return form.Run()
}

func newConstraintListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all constraints in date order",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := app.Plan.ListConstraints(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(all) == 0 {
				fmt.Fprintln(out, formatter.Dim("No constraints."))
				return nil
			}

			rows := make([][]string, 0, len(all))
			for _, c := range all {
				rows = append(rows, []string{
					domain.DateKey(c.Date),
					formatter.DayTypeBadge(string(c.Type), false),
					c.Description,
				})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"Date", "Type", "Description"}, rows))
			return nil
		},
	}
}

func newConstraintRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <date>",
		Aliases: []string{"remove"},
		Short:   "Remove the constraint on a date",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := domain.ParseDate(args[0])
			if err != nil {
				return err
			}
			if err := app.Plan.RemoveConstraint(cmd.Context(), date); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed constraint on %s\n", formatter.Bold(args[0]))
			return nil
		},
	}
	return cmd
}
