package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget seen content and session counters",
	Long: "Reset clears the seen scenarios and emails and the session counters of the profile.\n" +
		"The attempts history and completed modules are kept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			a.Session().Reset(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Profile %q reset.\n", a.cfg.Profile)
			return nil
		})
	},
}
