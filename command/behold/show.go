package behold

import (
	"strings"

	"rafal.dev/behold/command"
	"rafal.dev/behold/pkg/behold"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewShowCommand(app *command.App) *cobra.Command {
	m := &showCmd{App: app}

	cmd := &cobra.Command{
		Use:   "show MESSAGE [MESSAGE...]",
		Short: "Print a gated debug line",
		Args:  cobra.MinimumNArgs(1),
		RunE:  m.run,
	}

	m.register(cmd.Flags())

	return cmd
}

type showCmd struct {
	*command.App

	tag     string
	when    bool
	whenKey string
}

func (m *showCmd) register(f *pflag.FlagSet) {
	f.StringVarP(&m.tag, "tag", "t", "", "Tag appended to the output")
	f.BoolVarP(&m.when, "when", "w", true, "Speak up or stay quiet")
	f.StringVarP(&m.whenKey, "when-context", "k", "", "Context switch that gates the output, overrides --when")
}

func (m *showCmd) run(cmd *cobra.Command, args []string) error {
	b := behold.New().When(m.when)

	if m.whenKey != "" {
		b = b.WhenContext(m.whenKey)
	}

	if cmd.Flag("tag").Changed {
		b = b.Tag(m.tag)
	}

	b.Show(strings.Join(args, " "))

	return nil
}
