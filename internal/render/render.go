// Package render materializes scenario and email templates into concrete
// instances using an injected random source.
package render

import (
	"math/rand/v2"
	"slices"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abhisek/cyberrange/internal/content"
)

// DateLayout matches the en-US "weekday, month day, year, hh:mm AM" style
// mail clients use in message lists.
const DateLayout = "Mon, Jan 2, 2006, 03:04 PM"

// ShortDateLayout is the numeric en-US date.
const ShortDateLayout = "1/2/2006"

// Renderer fills templates with randomized cosmetic fields. A Renderer is
// owned by a single session and is not safe for concurrent use.
type Renderer struct {
	rng     *rand.Rand
	now     func() time.Time
	printer *message.Printer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock overrides the time source used for dates and reference years.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

// WithLanguage sets the locale used for amount formatting.
func WithLanguage(tag language.Tag) Option {
	return func(r *Renderer) { r.printer = message.NewPrinter(tag) }
}

// New creates a Renderer. A nil rng gets a randomly seeded PCG source.
func New(rng *rand.Rand, opts ...Option) *Renderer {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	r := &Renderer{
		rng:     rng,
		now:     time.Now,
		printer: message.NewPrinter(language.AmericanEnglish),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rand exposes the underlying random source so selection shares it.
func (r *Renderer) Rand() *rand.Rand { return r.rng }

// Scenario renders a fixed scenario. Only the email display date varies.
func (r *Renderer) Scenario(t content.ScenarioTemplate, id string) content.Scenario {
	c := t.Content
	if ec, ok := c.(content.EmailContent); ok {
		ec.Date = r.Date()
		c = ec
	}
	return content.Scenario{
		ID:              id,
		TemplateID:      t.ID,
		Title:           t.Title,
		Difficulty:      t.Difficulty,
		Label:           t.Label,
		Content:         c,
		Explanation:     t.Explanation,
		RedFlags:        slices.Clone(t.RedFlags),
		TrustIndicators: slices.Clone(t.TrustIndicators),
	}
}

// Email renders an email template. Label, explanation and red flags come
// from the template unchanged.
func (r *Renderer) Email(t content.EmailTemplate, id string) content.Email {
	d := t.Compose(r)
	return content.Email{
		ID:          id,
		TemplateID:  t.ID,
		Category:    t.Category,
		Difficulty:  t.Difficulty,
		From:        d.From,
		To:          content.Recipient,
		Subject:     d.Subject,
		Body:        d.Body,
		Date:        r.Date(),
		Attachment:  d.Attachment,
		Headers:     r.Headers(t.Difficulty, d.Domain),
		Label:       content.LabelPhishing,
		Explanation: t.Explanation,
		RedFlags:    slices.Clone(t.RedFlags),
	}
}
