package cmd

import (
	"fmt"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/ui/theme"
	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List learning modules and their completion",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return withApp(cmd, func(a *app) error {
			mods, err := a.Session().Modules(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, mods)
			}

			var cat content.ModuleCategory
			for _, m := range mods {
				if m.Category != cat {
					cat = m.Category
					fmt.Fprintln(out, theme.Section.Render(string(cat)))
				}
				mark := theme.Hint.Render("[ ]")
				if m.Completed {
					mark = theme.Correct.Render("[x]")
				}
				fmt.Fprintf(out, "%s %-26s %s\n", mark, m.ID, m.Title)
			}
			return nil
		})
	},
}

var modulesViewCmd = &cobra.Command{
	Use:   "view <module-id>",
	Short: "Read a learning module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, ok := content.ModuleByID(args[0])
		if !ok {
			return fmt.Errorf("module %q not found", args[0])
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, theme.Title.Render(m.Title))
		fmt.Fprintln(out, theme.Subtitle.Render(m.Description))
		fmt.Fprintln(out, theme.Section.Render("Why it matters"))
		fmt.Fprintln(out, theme.Body.Render(m.WhyItMatters))
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Body.Render(m.Body))
		fmt.Fprintln(out)
		fmt.Fprintln(out, theme.Hint.Render("Mark it done with: cyberrange modules complete "+m.ID))
		return nil
	},
}

var modulesCompleteCmd = &cobra.Command{
	Use:   "complete <module-id>",
	Short: "Mark a module as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			xp, err := a.Session().CompleteModule(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if xp == 0 {
				fmt.Fprintln(out, "Already completed.")
				return nil
			}
			fmt.Fprintln(out, theme.Correct.Render(fmt.Sprintf("+%d XP", xp)))
			if next, ok := content.NextModule(args[0]); ok {
				fmt.Fprintln(out, theme.Hint.Render("Up next: "+next.Title+" ("+next.ID+")"))
			}
			return nil
		})
	},
}

func init() {
	modulesCmd.Flags().Bool("json", false, "Print as JSON")
	modulesCmd.AddCommand(modulesViewCmd)
	modulesCmd.AddCommand(modulesCompleteCmd)
}
