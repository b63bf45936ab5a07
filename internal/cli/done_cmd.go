package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
)

func newDoneCmd(app *App) *cobra.Command {
	var subtopic int
	var undo bool

	cmd := &cobra.Command{
		Use:   "done <topic-id>",
		Short: "Mark a topic or one of its subtopics complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topicID := args[0]
			completed := !undo

			var err error
			if cmd.Flags().Changed("subtopic") {
				err = app.Progress.MarkSubtopicComplete(cmd.Context(), topicID, subtopic, completed)
			} else {
				err = app.Progress.MarkTopicComplete(cmd.Context(), topicID, completed)
			}
			if err != nil {
				return err
			}

			verb := "complete"
			if undo {
				verb = "incomplete"
			}
			target := topicID
			if cmd.Flags().Changed("subtopic") {
				target = fmt.Sprintf("%s subtopic %d", topicID, subtopic)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s marked %s\n", formatter.Bold(target), verb)
			return nil
		},
	}

	cmd.Flags().IntVarP(&subtopic, "subtopic", "s", 0, "subtopic index to mark instead of the whole topic")
	cmd.Flags().BoolVar(&undo, "undo", false, "mark incomplete instead")
	return cmd
}
