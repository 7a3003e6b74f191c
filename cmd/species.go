package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"edna-quiz/quiz"
)

func newSpeciesCmd(o *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "species",
		Short: "Print the species list offered in every dropdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.load(cmd)
			if err != nil {
				return err
			}

			locales := []quiz.Locale{o.locale()}
			if all {
				locales = quiz.Locales
			}
			out := cmd.OutOrStdout()
			for _, loc := range locales {
				if all {
					fmt.Fprintf(out, "[%s]\n", loc)
				}
				for _, name := range c.Species(loc) {
					fmt.Fprintln(out, name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Print the list for every locale")
	return cmd
}
