package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log and inspect study sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
	)
	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var dateFlag, notes string
	var hours float64
	var subtopics []int
	var incomplete bool

	cmd := &cobra.Command{
		Use:   "log <topic-id>",
		Short: "Log a study session against a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.StudySession{
				TopicID:         args[0],
				SubtopicIndices: subtopics,
				PlannedHours:    hours,
				ActualHours:     hours,
				Completed:       !incomplete,
				Notes:           notes,
			}
			if dateFlag != "" {
				date, err := domain.ParseDate(dateFlag)
				if err != nil {
					return err
				}
				s.Date = date
			}

			if err := app.Progress.LogSession(cmd.Context(), s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s %s\n",
				formatter.Bold(formatter.FormatHours(s.ActualHours)),
				formatter.Bold(s.TopicID),
				formatter.Dim("("+s.ID+")"))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 1, "hours studied")
	cmd.Flags().IntSliceVar(&subtopics, "subtopics", nil, "subtopic indices covered")
	cmd.Flags().StringVar(&dateFlag, "date", "", "session date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.Flags().BoolVar(&incomplete, "incomplete", false, "do not mark the covered subtopics complete")
	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent study sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Progress.ListRecentSessions(cmd.Context(), days)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, formatter.Dim("No sessions logged."))
				return nil
			}

			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				mark := formatter.StyleGreen.Render("✔")
				if !s.Completed {
					mark = formatter.Dim("…")
				}
				id := s.ID
				if len(id) > 8 {
					id = id[:8]
				}
				rows = append(rows, []string{
					domain.DateKey(s.Date),
					s.TopicID,
					formatter.FormatHours(s.ActualHours),
					mark,
					formatter.Dim(id),
				})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"Date", "Topic", "Hours", "", "ID"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "how many days back to list")
	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <session-id>",
		Aliases: []string{"remove"},
		Short:   "Delete a logged session",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Progress.DeleteSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session removed")
			return nil
		},
	}
}
