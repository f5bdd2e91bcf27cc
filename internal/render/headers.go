package render

import (
	"fmt"

	"golang.org/x/text/message"

	"github.com/abhisek/cyberrange/internal/content"
)

// Authentication results reported in forged headers. Harder emails look
// more authenticated so the learner has to judge the content.
var authResults = map[content.Difficulty]struct{ spf, dkim string }{
	content.DifficultyEasy:   {"fail", "fail"},
	content.DifficultyMedium: {"softfail", "none"},
	content.DifficultyHard:   {"neutral", "pass"},
}

// Headers forges the header block for an email sent from domain.
func (r *Renderer) Headers(d content.Difficulty, domain string) content.Headers {
	auth, ok := authResults[d]
	if !ok {
		auth = authResults[content.DifficultyMedium]
	}

	h := content.Headers{
		XOriginatingIP: r.Pick(content.SuspiciousIPs),
		SPF:            auth.spf,
		DKIM:           auth.dkim,
	}
	ip := r.Pick(content.SuspiciousIPs)
	if d == content.DifficultyEasy {
		h.Received = fmt.Sprintf("from mail.%s (unknown [%s])", domain, ip)
	} else {
		h.Received = fmt.Sprintf("from smtp.%s (mx1.%s [%s])", domain, domain, ip)
	}
	if d != content.DifficultyHard {
		h.ReplyTo = "noreply@" + domain
	}
	return h
}

// FormatAmount formats a dollar value with locale digit grouping and two
// decimals, e.g. $1,247.00.
func FormatAmount(p *message.Printer, v float64) string {
	return p.Sprintf("$%.2f", v)
}
