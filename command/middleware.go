package command

import (
	"github.com/spf13/cobra"
)

type CobraFunc func(cmd *cobra.Command, args []string) error

type Middleware func(CobraFunc) CobraFunc

func Use(cmd *cobra.Command, mw Middleware) {
	var apply func(*cobra.Command)
	apply = func(cmd *cobra.Command) {
		run := cmd.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return mw(run)(cmd, args)
		}
		for _, cmd := range cmd.Commands() {
			apply(cmd)
		}
	}
	apply(cmd)
}
