package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/studyplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan     service.PlanService
	Progress service.ProgressService
	Planner  service.PlannerService
	Status   service.StatusService

	// IsInteractive reports whether stdin is a terminal; interactive
	// forms are offered only when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studyplan" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "studyplan",
		Short:         "Placement-prep study planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newInitCmd(app),
		newTodayCmd(app),
		newScheduleCmd(app),
		newStatusCmd(app),
		newConstraintCmd(app),
		newDoneCmd(app),
		newLabDaysCmd(app),
		newSessionCmd(app),
	)

	return root
}
