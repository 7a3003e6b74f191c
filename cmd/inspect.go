package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"edna-quiz/quiz"
)

func newInspectCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the dataset and flag entries that render empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.load(cmd)
			if err != nil {
				return err
			}
			loc := o.locale()
			out := cmd.OutOrStdout()

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("KEY", "TITLE", "ENTRIES", "SEQUENCES", "ICONS", "BLANK")
			for _, key := range c.WaterKeys() {
				w, _ := c.Data.WaterType(key)
				t.Row(append([]string{key, w.TitleFor(loc)}, entryCounts(w.Codes)...)...)
			}
			if c.Data.HasExtras() {
				t.Row(append([]string{quiz.ExtrasKey, "-"}, entryCounts(c.Data.Extras)...)...)
			}
			fmt.Fprintln(out, t.Render())

			for _, key := range c.WaterKeys() {
				w, _ := c.Data.WaterType(key)
				for i, e := range w.Codes {
					if e.Sequence == "" && e.Icon == "" {
						fmt.Fprintf(out, "blank display: %s #%d (%s)\n", key, i+1, e.SpeciesFor(loc))
					}
					if e.SpeciesFor(loc) == "" {
						fmt.Fprintf(out, "no %s answer: %s #%d\n", loc, key, i+1)
					}
				}
			}
			for _, l := range quiz.Locales {
				fmt.Fprintf(out, "species (%s): %d\n", l, len(c.Species(l)))
			}
			return nil
		},
	}
}

func entryCounts(codes []quiz.CodeEntry) []string {
	var seqs, icons, blank int
	for _, e := range codes {
		if e.Sequence != "" {
			seqs++
		}
		if e.Icon != "" {
			icons++
		}
		if e.Sequence == "" && e.Icon == "" {
			blank++
		}
	}
	return []string{
		strconv.Itoa(len(codes)),
		strconv.Itoa(seqs),
		strconv.Itoa(icons),
		strconv.Itoa(blank),
	}
}
