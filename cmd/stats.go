package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/cyberrange/internal/session"
	"github.com/abhisek/cyberrange/internal/store"
	"github.com/abhisek/cyberrange/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics for the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		recent, _ := cmd.Flags().GetInt("recent")
		if recent < 0 {
			return fmt.Errorf("--recent must not be negative")
		}
		return withApp(cmd, func(a *app) error {
			sess := a.Session()
			summary, err := sess.Stats(cmd.Context())
			if err != nil {
				return err
			}

			var attempts []store.Attempt
			if recent > 0 {
				attempts, err = sess.RecentAttempts(cmd.Context(), recent)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if recent > 0 {
					return writeJSON(out, struct {
						*session.Summary
						Recent []store.Attempt `json:"recent"`
					}{summary, attempts})
				}
				return writeJSON(out, summary)
			}
			printSummary(out, a.cfg.Profile, summary)
			if recent > 0 {
				printAttempts(out, attempts)
			}
			return nil
		})
	},
}

func printAttempts(w io.Writer, attempts []store.Attempt) {
	if len(attempts) == 0 {
		fmt.Fprintln(w, theme.Hint.Render("No attempts yet."))
		return
	}
	rows := []string{theme.Section.Render("Recent attempts")}
	for _, at := range attempts {
		mark := theme.Incorrect.Render("✗")
		if at.Correct {
			mark = theme.Correct.Render("✓")
		}
		rows = append(rows, fmt.Sprintf("%s %s  %-8s %-6s %+4d  %5.1fs  %s",
			mark,
			at.Timestamp.Format("2006-01-02 15:04"),
			at.Kind,
			at.Difficulty,
			at.ScoreChange,
			at.TimeTakenSecs,
			at.SelectedAction,
		))
	}
	lipgloss.Fprintln(w, lines(rows...))
}

func init() {
	statsCmd.Flags().Bool("json", false, "Print as JSON")
	statsCmd.Flags().Int("recent", 0, "Also list the last N attempts")
}
