package render

import (
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abhisek/cyberrange/internal/content"
)

var fixedNow = time.Date(2026, time.October, 19, 15, 30, 0, 0, time.UTC)

func newTestRenderer(seed uint64) *Renderer {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b9)), WithClock(func() time.Time { return fixedNow }))
}

func TestEmail_LabelAndExplanationFixed(t *testing.T) {
	r := newTestRenderer(1)
	for _, tmpl := range content.EmailTemplates() {
		for i := 0; i < 20; i++ {
			e := r.Email(tmpl, tmpl.ID+":x")
			if e.Label != content.LabelPhishing {
				t.Fatalf("%s: label = %q", tmpl.ID, e.Label)
			}
			if e.Explanation != tmpl.Explanation {
				t.Fatalf("%s: explanation changed", tmpl.ID)
			}
			if !slices.Equal(e.RedFlags, tmpl.RedFlags) {
				t.Fatalf("%s: red flags changed", tmpl.ID)
			}
			if e.Difficulty != tmpl.Difficulty || e.Category != tmpl.Category {
				t.Fatalf("%s: difficulty/category changed", tmpl.ID)
			}
			if e.To != content.Recipient {
				t.Errorf("%s: to = %q", tmpl.ID, e.To)
			}
		}
	}
}

func TestEmail_RedFlagsAreCopies(t *testing.T) {
	r := newTestRenderer(2)
	tmpl, _ := content.EmailTemplateByID("bank-verify")
	e := r.Email(tmpl, "bank-verify:1")
	e.RedFlags[0] = "mutated"

	again, _ := content.EmailTemplateByID("bank-verify")
	if again.RedFlags[0] == "mutated" {
		t.Fatal("rendering must not share template slices")
	}
}

func TestHeaders_ByDifficulty(t *testing.T) {
	tests := []struct {
		difficulty  content.Difficulty
		spf, dkim   string
		wantReplyTo bool
		received    string
	}{
		{content.DifficultyEasy, "fail", "fail", true, "from mail.evil.test (unknown ["},
		{content.DifficultyMedium, "softfail", "none", true, "from smtp.evil.test (mx1.evil.test ["},
		{content.DifficultyHard, "neutral", "pass", false, "from smtp.evil.test (mx1.evil.test ["},
	}
	r := newTestRenderer(3)
	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			h := r.Headers(tt.difficulty, "evil.test")
			if h.SPF != tt.spf || h.DKIM != tt.dkim {
				t.Errorf("spf/dkim = %s/%s, want %s/%s", h.SPF, h.DKIM, tt.spf, tt.dkim)
			}
			if (h.ReplyTo != "") != tt.wantReplyTo {
				t.Errorf("reply-to = %q, want present=%v", h.ReplyTo, tt.wantReplyTo)
			}
			if tt.wantReplyTo && h.ReplyTo != "noreply@evil.test" {
				t.Errorf("reply-to = %q", h.ReplyTo)
			}
			if !strings.HasPrefix(h.Received, tt.received) {
				t.Errorf("received = %q, want prefix %q", h.Received, tt.received)
			}
			if !slices.Contains(content.SuspiciousIPs, h.XOriginatingIP) {
				t.Errorf("x-originating-ip = %q not in pool", h.XOriginatingIP)
			}
		})
	}
}

func TestReference_Format(t *testing.T) {
	r := newTestRenderer(4)
	re := regexp.MustCompile(`^INV-(2025|2026)-[1-9]\d{4}$`)
	for i := 0; i < 200; i++ {
		if ref := r.Reference(); !re.MatchString(ref) {
			t.Fatalf("reference %q does not match %s", ref, re)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	p := message.NewPrinter(language.AmericanEnglish)
	tests := []struct {
		in   float64
		want string
	}{
		{1247, "$1,247.00"},
		{950, "$950.00"},
		{7500, "$7,500.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(p, tt.in); got != tt.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAmount_FromPool(t *testing.T) {
	r := newTestRenderer(5)
	p := message.NewPrinter(language.AmericanEnglish)
	valid := make(map[string]bool)
	for _, v := range content.Amounts {
		valid[FormatAmount(p, v)] = true
	}
	for i := 0; i < 100; i++ {
		if a := r.Amount(); !valid[a] {
			t.Fatalf("amount %q not from pool", a)
		}
	}
}

func TestDigitsAndAlnum(t *testing.T) {
	r := newTestRenderer(6)
	for i := 0; i < 50; i++ {
		d := r.Digits(10)
		if len(d) != 10 || d[0] == '0' {
			t.Fatalf("Digits(10) = %q", d)
		}
		a := r.Alnum(8)
		if len(a) != 8 || strings.ToUpper(a) != a {
			t.Fatalf("Alnum(8) = %q", a)
		}
	}
	if r.Digits(0) != "" {
		t.Error("Digits(0) should be empty")
	}
}

func TestDate_WithinTwelveHours(t *testing.T) {
	r := newTestRenderer(7)
	for i := 0; i < 50; i++ {
		got, err := time.Parse(DateLayout, r.Date())
		if err != nil {
			t.Fatalf("parse date: %v", err)
		}
		age := fixedNow.Sub(got)
		if age < time.Hour || age > 12*time.Hour {
			t.Fatalf("date age %v outside [1h, 12h]", age)
		}
	}
}

func TestScenario_OnlyEmailDateVaries(t *testing.T) {
	r := newTestRenderer(8)
	for _, tmpl := range content.Scenarios() {
		s := r.Scenario(tmpl, tmpl.ID+":1")
		if s.Label != tmpl.Label || s.Explanation != tmpl.Explanation || s.Difficulty != tmpl.Difficulty {
			t.Fatalf("%s: fixed fields changed", tmpl.ID)
		}
		if s.Channel() != tmpl.Content.Channel() {
			t.Fatalf("%s: channel changed", tmpl.ID)
		}
		switch c := s.Content.(type) {
		case content.EmailContent:
			if c.Date == "" {
				t.Errorf("%s: email scenario missing date", tmpl.ID)
			}
			orig := tmpl.Content.(content.EmailContent)
			if orig.Date != "" {
				t.Errorf("%s: template content mutated", tmpl.ID)
			}
			if c.Body != orig.Body || c.From != orig.From {
				t.Errorf("%s: email body changed", tmpl.ID)
			}
		default:
			if s.Content != tmpl.Content {
				t.Errorf("%s: non-email content changed", tmpl.ID)
			}
		}
	}
}

func TestRenderer_Deterministic(t *testing.T) {
	tmpl, _ := content.EmailTemplateByID("ceo-vendor-payment")
	a := newTestRenderer(42).Email(tmpl, "x")
	b := newTestRenderer(42).Email(tmpl, "x")
	if a.Body != b.Body || a.From != b.From || a.Headers != b.Headers || a.Date != b.Date {
		t.Fatal("same seed should render identical emails")
	}
}
