package cmd

import (
	"github.com/spf13/cobra"

	"edna-quiz/tui"
)

func newPlayCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, o)
		},
	}
}

func runPlay(cmd *cobra.Command, o *rootOptions) error {
	c, err := o.load(cmd)
	if err != nil {
		return err
	}

	// Stderr shares the terminal with the quiz screen.
	out, closeLog, err := screenLogOutput(o.cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	o.logger = NewLogger(o.cfg.Log, out)

	return tui.Run(c, o.locale(), o.displayLevel())
}
