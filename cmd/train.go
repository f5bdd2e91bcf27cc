package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/selector"
	"github.com/abhisek/cyberrange/internal/trainer"
	"github.com/abhisek/cyberrange/internal/ui/theme"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Answer scenarios and emails interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := difficultyFlag(cmd)
		if err != nil {
			return err
		}
		rounds, _ := cmd.Flags().GetInt("rounds")
		return runTrain(cmd, d, rounds)
	},
}

type trainMode string

const (
	modeScenarios trainMode = "scenarios"
	modeEmails    trainMode = "emails"
	modeMixed     trainMode = "mixed"
)

// item is one thing shown to the trainee.
type item struct {
	id          string
	explanation string
	indicators  []string
}

func runTrain(cmd *cobra.Command, d content.Difficulty, rounds int) error {
	mode := modeMixed
	if cmd.Flags().Lookup("mode") != nil {
		m, _ := cmd.Flags().GetString("mode")
		mode = trainMode(m)
	}
	switch mode {
	case modeScenarios, modeEmails, modeMixed:
	default:
		return fmt.Errorf("unknown mode %q (want scenarios, emails or mixed)", mode)
	}

	return withApp(cmd, func(a *app) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		out := cmd.OutOrStdout()
		in := bufio.NewScanner(cmd.InOrStdin())
		sess := a.Session()
		wait := a.cfg.Feedback.Timeout + 5*time.Second

		fmt.Fprintln(out, theme.Hint.Render("Answer p (phishing) or l (legitimate); q quits."))
		for round := 0; rounds <= 0 || round < rounds; round++ {
			it, err := showNext(ctx, out, sess, mode, round, d)
			if err != nil {
				var empty *selector.EmptyPoolError
				if errors.As(err, &empty) {
					fmt.Fprintln(out, theme.Hint.Render("No content matches that difficulty."))
					return nil
				}
				return err
			}

			shown := time.Now()
			label, ok := prompt(out, in)
			if !ok {
				break
			}

			o, err := sess.Answer(ctx, trainer.Answer{
				InstanceID: it.id,
				Choice:     label,
				TimeTaken:  time.Since(shown),
			})
			if err != nil {
				return err
			}
			printOutcome(out, o, it.explanation, it.indicators)

			fbCtx, cancel := context.WithTimeout(ctx, wait)
			fb, err := sess.WaitFeedback(fbCtx, it.id)
			cancel()
			if err == nil {
				printFeedback(out, fb)
			} else {
				a.logger.Debug("feedback not shown", zap.String("instance", it.id), zap.Error(err))
			}
		}

		summary, err := sess.Stats(ctx)
		if err != nil {
			return err
		}
		printSummary(out, a.cfg.Profile, summary)
		return nil
	})
}

func showNext(ctx context.Context, out io.Writer, sess *trainer.Session, mode trainMode, round int, d content.Difficulty) (item, error) {
	if mode == modeEmails || (mode == modeMixed && round%2 == 1) {
		e, err := sess.NextEmail(ctx, d)
		if err != nil {
			return item{}, err
		}
		printEmail(out, e)
		return item{id: e.ID, explanation: e.Explanation, indicators: e.RedFlags}, nil
	}

	sc, err := sess.NextScenario(ctx, d)
	if err != nil {
		return item{}, err
	}
	printScenario(out, sc)
	return item{id: sc.ID, explanation: sc.Explanation, indicators: sc.Indicators()}, nil
}

// prompt reads answers until a valid one is given. It returns false on
// quit or end of input.
func prompt(out io.Writer, in *bufio.Scanner) (content.Label, bool) {
	for {
		fmt.Fprint(out, theme.Title.Render("> "))
		if !in.Scan() {
			return "", false
		}
		switch s := strings.ToLower(strings.TrimSpace(in.Text())); s {
		case "q", "quit", "exit":
			return "", false
		default:
			if l, err := content.ParseLabel(s); err == nil {
				return l, true
			}
			fmt.Fprintln(out, theme.Hint.Render("Type p, l or q."))
		}
	}
}

func init() {
	trainCmd.Flags().StringP("difficulty", "d", "", "easy, medium or hard (default: any)")
	trainCmd.Flags().StringP("mode", "m", string(modeMixed), "scenarios, emails or mixed")
	trainCmd.Flags().IntP("rounds", "r", 0, "Stop after this many answers (0: until quit)")
}
