package behold

import (
	"rafal.dev/behold/command"
	beholdctx "rafal.dev/behold/pkg/context"

	"github.com/spf13/cobra"
)

func NewContextCommand(app *command.App) *cobra.Command {
	m := &contextCmd{App: app}

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the resolved context switches",
		Args:  cobra.NoArgs,
		RunE:  m.run,
	}

	return cmd
}

type contextCmd struct {
	*command.App
}

func (m *contextCmd) run(cmd *cobra.Command, _ []string) error {
	return m.Render(cmd.OutOrStdout(), beholdctx.Snapshot())
}
