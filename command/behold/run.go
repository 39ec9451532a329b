package behold

import (
	"fmt"
	"os"
	"os/exec"

	"rafal.dev/behold/command"
	"rafal.dev/behold/pkg/behold"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewRunCommand(app *command.App) *cobra.Command {
	m := &runCmd{App: app}

	cmd := &cobra.Command{
		Use:   "run -- COMMAND [ARGS...]",
		Short: "Run a command when a context switch is on",
		Args:  cobra.MinimumNArgs(1),
		RunE:  m.run,
	}

	m.register(cmd.Flags())

	return cmd
}

type runCmd struct {
	*command.App

	when    bool
	whenKey string

	err error
}

func (m *runCmd) register(f *pflag.FlagSet) {
	f.BoolVarP(&m.when, "when", "w", true, "Run or skip the command")
	f.StringVarP(&m.whenKey, "when-context", "k", "", "Context switch that gates the run, overrides --when")
}

func (m *runCmd) run(cmd *cobra.Command, args []string) error {
	b := behold.New().When(m.when)

	if m.whenKey != "" {
		b = b.WhenContext(m.whenKey)
	}

	b.Call(func() {
		c := exec.CommandContext(m.Context(), args[0], args[1:]...)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		m.err = c.Run()
	})

	if m.err != nil {
		return fmt.Errorf("run error: %w", m.err)
	}

	return nil
}
