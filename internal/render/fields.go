package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/cyberrange/internal/content"
)

var _ content.Fields = (*Renderer)(nil)

const alnum = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Pick returns a uniformly chosen element of pool, or "" for an empty pool.
func (r *Renderer) Pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[r.rng.IntN(len(pool))]
}

func (r *Renderer) SenderName() string { return r.Pick(content.SenderNames) }
func (r *Renderer) Company() string    { return r.Pick(content.CompanyNames) }
func (r *Renderer) Bank() string       { return r.Pick(content.BankNames) }
func (r *Renderer) Deadline() string   { return r.Pick(content.Deadlines) }

// Domain picks a look-alike domain from the difficulty's bucket.
func (r *Renderer) Domain(d content.Difficulty) string {
	return r.Pick(content.FakeDomains(d))
}

// Amount picks a dollar amount and formats it for the renderer's locale.
func (r *Renderer) Amount() string {
	v := content.Amounts[r.rng.IntN(len(content.Amounts))]
	return FormatAmount(r.printer, v)
}

// Reference returns an invoice number like INV-2025-48213: a four digit
// year (this year or last) and a five digit suffix.
func (r *Renderer) Reference() string {
	year := r.now().Year() - r.rng.IntN(2)
	return fmt.Sprintf("INV-%04d-%05d", year, 10000+r.rng.IntN(90000))
}

// Digits returns n random decimal digits with a non-zero leading digit.
func (r *Renderer) Digits(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteByte(byte('1' + r.rng.IntN(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + r.rng.IntN(10)))
	}
	return b.String()
}

// Alnum returns n random upper-case alphanumerics.
func (r *Renderer) Alnum(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alnum[r.rng.IntN(len(alnum))])
	}
	return b.String()
}

// Date returns a display timestamp between one and twelve hours ago.
func (r *Renderer) Date() string {
	hours := 1 + r.rng.IntN(12)
	return r.now().Add(-time.Duration(hours) * time.Hour).Format(DateLayout)
}

// DaysAhead returns the short date n days from now.
func (r *Renderer) DaysAhead(n int) string {
	return r.now().AddDate(0, 0, n).Format(ShortDateLayout)
}

// Today returns today's short date.
func (r *Renderer) Today() string {
	return r.now().Format(ShortDateLayout)
}

// Timestamp returns the current UTC time in RFC 3339 with milliseconds.
func (r *Renderer) Timestamp() string {
	return r.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
