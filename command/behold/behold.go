package behold

import (
	"rafal.dev/behold/command"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewCommand(app *command.App) *cobra.Command {
	m := &beholdCmd{App: app}

	cmd := &cobra.Command{
		Use:           "behold",
		Short:         "Contextual debug printing",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          m.run,
	}

	cmd.AddCommand(
		NewShowCommand(app),
		NewRunCommand(app),
		NewContextCommand(app),
	)

	m.register(cmd.PersistentFlags())

	command.Use(cmd, app.Init)

	return cmd
}

type beholdCmd struct {
	*command.App
}

func (m *beholdCmd) register(f *pflag.FlagSet) {
	m.App.Register(f)
}

func (m *beholdCmd) run(cmd *cobra.Command, _ []string) error {
	return cmd.Usage()
}
