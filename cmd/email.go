package cmd

import (
	"fmt"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/ui/theme"
	"github.com/spf13/cobra"
)

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Generate phishing emails for inspection",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := difficultyFlag(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 || count > 50 {
			return fmt.Errorf("--count must be between 1 and 50, got %d", count)
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		reveal, _ := cmd.Flags().GetBool("reveal")

		return withApp(cmd, func(a *app) error {
			var emails []content.Email
			if count == 1 {
				e, err := a.Session().NextEmail(cmd.Context(), d)
				if err != nil {
					return err
				}
				emails = append(emails, e)
			} else {
				emails, err = a.Session().Emails(cmd.Context(), count, d)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, emails)
			}
			for _, e := range emails {
				printEmail(out, e)
				if reveal {
					printAnswer(out, e.Label, e.Explanation, e.RedFlags)
				}
			}
			return nil
		})
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List email template categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		counts := make(map[string]int)
		for _, t := range content.EmailTemplates() {
			counts[t.Category]++
		}
		cats := content.EmailCategories()
		asJSON, _ := cmd.Flags().GetBool("json")
		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, map[string]any{
				"categories":      cats,
				"total_templates": len(content.EmailTemplates()),
			})
		}

		for _, c := range cats {
			fmt.Fprintf(out, "%-28s %s\n", c, theme.Hint.Render(fmt.Sprintf("%d templates", counts[c])))
		}
		fmt.Fprintf(out, "\n%d templates in %d categories\n", len(content.EmailTemplates()), len(cats))
		return nil
	},
}

func init() {
	emailCmd.Flags().StringP("difficulty", "d", "", "easy, medium or hard (default: any)")
	emailCmd.Flags().IntP("count", "n", 1, "Number of emails to generate (1-50)")
	emailCmd.Flags().Bool("json", false, "Print as JSON, answers included")
	emailCmd.Flags().Bool("reveal", false, "Also print the answer and red flags")

	categoriesCmd.Flags().Bool("json", false, "Print as JSON")
}
