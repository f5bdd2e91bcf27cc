package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cyberrange/internal/content"
	"github.com/abhisek/cyberrange/internal/feedback"
	"github.com/abhisek/cyberrange/internal/session"
	"github.com/abhisek/cyberrange/internal/trainer"
	"github.com/abhisek/cyberrange/internal/ui/theme"
)

func field(name, value string) string {
	if value == "" {
		return ""
	}
	return theme.Label.Render(name) + theme.Body.Render(value)
}

func lines(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}

func bullets(items []string) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = theme.Bullet.Render(it)
	}
	return lines(out...)
}

func heading(title string, d content.Difficulty, tag string) string {
	return theme.Title.Render(title) + " " + theme.Difficulty(d).Render(d.DisplayName()) + " " + theme.Subtitle.Render(tag)
}

// printScenario renders the scenario without revealing the answer.
func printScenario(w io.Writer, s content.Scenario) {
	var body string
	switch c := s.Content.(type) {
	case content.EmailContent:
		body = lines(
			field("From", c.From),
			field("To", c.To),
			field("Date", c.Date),
			field("Subject", c.Subject),
			field("Attachment", c.Attachment),
			"",
			theme.Body.Render(c.Body),
		)
	case content.SMSContent:
		body = lines(field("Sender", c.Sender), "", theme.Body.Render(c.Message))
	case content.WebsiteContent:
		body = lines(field("URL", theme.Mono.Render(c.URL)), field("Page", c.Title), "", theme.Body.Render(c.Body))
	case content.SocialContent:
		body = lines(field("Platform", c.Platform), field("Account", c.Username), "", theme.Body.Render(c.Post))
	case content.VoiceContent:
		body = lines(field("Caller", c.CallerNumber), "", theme.Body.Render(c.Transcript))
	case content.QRCodeContent:
		body = lines(field("Context", c.Context), field("Opens", theme.Mono.Render(c.Destination)))
	}

	lipgloss.Fprintln(w, theme.Card.Render(lines(
		heading(s.Title, s.Difficulty, s.Channel().DisplayName()),
		theme.Hint.Render(s.ID),
		"",
		body,
	)))
}

// printEmail renders the email and its forged headers.
func printEmail(w io.Writer, e content.Email) {
	lipgloss.Fprintln(w, theme.Card.Render(lines(
		heading(e.Subject, e.Difficulty, e.Category),
		theme.Hint.Render(e.ID),
		"",
		field("From", e.From),
		field("To", e.To),
		field("Date", e.Date),
		field("Attachment", e.Attachment),
		"",
		theme.Body.Render(e.Body),
		theme.Section.Render("Headers"),
		field("Received", e.Headers.Received),
		field("Reply-To", e.Headers.ReplyTo),
		field("X-Orig-IP", e.Headers.XOriginatingIP),
		field("SPF", e.Headers.SPF),
		field("DKIM", e.Headers.DKIM),
	)))
}

func verdict(o *trainer.Outcome) string {
	if o.Correct {
		return theme.Correct.Render(fmt.Sprintf("Correct! %+d", o.ScoreChange))
	}
	return theme.Incorrect.Render(fmt.Sprintf("Not quite. %+d", o.ScoreChange))
}

// printOutcome shows the grade and the explanation of the answered item.
func printOutcome(w io.Writer, o *trainer.Outcome, explanation string, indicators []string) {
	title := "Red flags"
	if o.CorrectAnswer == content.LabelLegitimate {
		title = "Trust indicators"
	}
	lipgloss.Fprintln(w, lines(
		verdict(o),
		field("You", o.SelectedAction),
		field("Expected", o.CorrectAction),
		field("Time", fmt.Sprintf("%.1fs", o.TimeTaken)),
		"",
		theme.Body.Render(explanation),
		theme.Section.Render(title),
		bullets(indicators),
		"",
		theme.Hint.Render(fmt.Sprintf("Session: %d/%d correct (%d%%)", o.Stats.Correct, o.Stats.Total, o.Stats.Accuracy)),
	))
}

func printFeedback(w io.Writer, r *feedback.Result) {
	source := "Coach"
	if r.Fallback {
		source = "Coach (offline)"
	}
	lipgloss.Fprintln(w, theme.Card.Render(lines(
		theme.Title.Render(source)+" "+theme.Threat(string(r.ThreatLevel)).Render(strings.ToUpper(string(r.ThreatLevel))),
		"",
		theme.Body.Render(r.Feedback),
		theme.Section.Render("Tips"),
		bullets(r.Tips),
		theme.Section.Render("Real-world impact"),
		theme.Body.Render(r.RealWorldImpact),
	)))
}

func statsLine(name string, s session.Stats) string {
	return field(name, fmt.Sprintf("%d/%d correct (%d%%)", s.Correct, s.Total, s.Accuracy))
}

func targetLine(s *session.Summary) string {
	if s.TargetMet {
		return theme.Correct.Render(fmt.Sprintf("%d%% achieved", session.AccuracyTarget))
	}
	return fmt.Sprintf("%d%% of %d%%", s.Accuracy, session.AccuracyTarget)
}

func printSummary(w io.Writer, profile string, s *session.Summary) {
	lipgloss.Fprintln(w, theme.Card.Render(lines(
		theme.Title.Render("Progress")+" "+theme.Subtitle.Render(profile),
		"",
		statsLine("Scenarios", s.Scenarios),
		statsLine("Emails", s.Emails),
		statsLine("Combined", s.Combined()),
		"",
		field("Rank", theme.Rank(string(s.Rank)).Render(string(s.Rank))),
		field("Attempts", fmt.Sprintf("%d (%d correct, %d%%)", s.Totals.Attempted, s.Totals.Correct, s.Accuracy)),
		field("Target", targetLine(s)),
		field("Score", fmt.Sprintf("%d (avg %d per attempt)", s.Totals.Score, s.AvgScore)),
		field("Modules", fmt.Sprintf("%d/%d", len(s.ModulesCompleted), len(content.Modules()))),
		field("XP", fmt.Sprintf("%d", s.XP)),
	)))
}
