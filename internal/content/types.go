package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned by ParseDifficulty for unrecognized input.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty is the authoring tier of a template.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns the supported difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Mixed"
	}
}

// ParseDifficulty parses a difficulty filter. Empty input, "any" and
// "mixed" all mean no filter and return the zero Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "mixed", "all":
		return "", nil
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}

// Channel is the medium a scenario arrives through.
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelSMS     Channel = "sms"
	ChannelWebsite Channel = "website"
	ChannelSocial  Channel = "social"
	ChannelVoice   Channel = "voice"
	ChannelQRCode  Channel = "qrcode"
)

// DisplayName returns a human-readable label for the channel.
func (c Channel) DisplayName() string {
	switch c {
	case ChannelEmail:
		return "Email"
	case ChannelSMS:
		return "SMS"
	case ChannelWebsite:
		return "Website"
	case ChannelSocial:
		return "Social Media"
	case ChannelVoice:
		return "Phone Call"
	case ChannelQRCode:
		return "QR Code"
	default:
		return string(c)
	}
}

// Label is the ground-truth classification of an instance.
type Label string

const (
	LabelPhishing   Label = "phishing"
	LabelLegitimate Label = "legitimate"
)

// ParseLabel accepts the answer spellings used by the CLI and the API.
func ParseLabel(s string) (Label, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "phishing", "phish", "p", "report":
		return LabelPhishing, nil
	case "legitimate", "legit", "safe", "l", "s":
		return LabelLegitimate, nil
	default:
		return "", fmt.Errorf("unknown answer %q", s)
	}
}

// UserAction describes what the user did when choosing this label.
func (l Label) UserAction() string {
	if l == LabelPhishing {
		return "Reported as Phishing"
	}
	return "Marked as Safe"
}

// CorrectAction describes the action that matches this label.
func (l Label) CorrectAction() string {
	if l == LabelPhishing {
		return "Report as Phishing"
	}
	return "Mark as Safe"
}

// Content is the channel-specific body of a scenario. Each channel has its
// own variant carrying only the fields that channel uses.
type Content interface {
	Channel() Channel
	content()
}

type EmailContent struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	Date       string `json:"date,omitempty"`
	Attachment string `json:"attachment,omitempty"`
}

type SMSContent struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

type WebsiteContent struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type SocialContent struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
	Post     string `json:"post"`
}

type VoiceContent struct {
	CallerNumber string `json:"caller_number"`
	Transcript   string `json:"transcript"`
}

type QRCodeContent struct {
	Context     string `json:"context"`
	Destination string `json:"destination"`
}

func (EmailContent) Channel() Channel   { return ChannelEmail }
func (SMSContent) Channel() Channel     { return ChannelSMS }
func (WebsiteContent) Channel() Channel { return ChannelWebsite }
func (SocialContent) Channel() Channel  { return ChannelSocial }
func (VoiceContent) Channel() Channel   { return ChannelVoice }
func (QRCodeContent) Channel() Channel  { return ChannelQRCode }

func (EmailContent) content()   {}
func (SMSContent) content()     {}
func (WebsiteContent) content() {}
func (SocialContent) content()  {}
func (VoiceContent) content()   {}
func (QRCodeContent) content()  {}

// ScenarioTemplate is a fixed, author-defined scenario. Label, explanation
// and indicator lists are never touched by rendering.
type ScenarioTemplate struct {
	ID              string
	Title           string
	Difficulty      Difficulty
	Label           Label
	Content         Content
	Explanation     string
	RedFlags        []string
	TrustIndicators []string
}

// TemplateID implements selector.Candidate.
func (t ScenarioTemplate) TemplateID() string { return t.ID }

// Level implements selector.Candidate.
func (t ScenarioTemplate) Level() Difficulty { return t.Difficulty }

// Scenario is a rendered scenario ready to be shown.
type Scenario struct {
	ID              string
	TemplateID      string
	Title           string
	Difficulty      Difficulty
	Label           Label
	Content         Content
	Explanation     string
	RedFlags        []string
	TrustIndicators []string
}

// Channel returns the channel of the scenario's content variant.
func (s Scenario) Channel() Channel {
	if s.Content == nil {
		return ""
	}
	return s.Content.Channel()
}

// MarshalJSON emits the content variant next to its channel tag.
func (s Scenario) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID              string     `json:"id"`
		TemplateID      string     `json:"template_id"`
		Type            Channel    `json:"type"`
		Title           string     `json:"title"`
		Difficulty      Difficulty `json:"difficulty"`
		Label           Label      `json:"correct_answer"`
		Content         Content    `json:"content"`
		Explanation     string     `json:"explanation"`
		RedFlags        []string   `json:"red_flags,omitempty"`
		TrustIndicators []string   `json:"trust_indicators,omitempty"`
	}{
		ID:              s.ID,
		TemplateID:      s.TemplateID,
		Type:            s.Channel(),
		Title:           s.Title,
		Difficulty:      s.Difficulty,
		Label:           s.Label,
		Content:         s.Content,
		Explanation:     s.Explanation,
		RedFlags:        s.RedFlags,
		TrustIndicators: s.TrustIndicators,
	})
}

// Indicators returns the red flags for phishing scenarios and the trust
// indicators for legitimate ones.
func (s Scenario) Indicators() []string {
	if s.Label == LabelPhishing {
		return s.RedFlags
	}
	return s.TrustIndicators
}

// Fields is the randomized data a template draws on while composing.
type Fields interface {
	SenderName() string
	Company() string
	Bank() string
	Amount() string
	Deadline() string
	Domain(d Difficulty) string
	Reference() string
	Digits(n int) string
	Alnum(n int) string
	DaysAhead(n int) string
	Today() string
	Timestamp() string
	Pick(pool []string) string
}

// Draft holds the cosmetic parts of an email produced by a template.
// Domain is the sending domain used for header forgery.
type Draft struct {
	From       string
	Subject    string
	Body       string
	Attachment string
	Domain     string
}

// EmailTemplate produces phishing emails for one attack pattern.
type EmailTemplate struct {
	ID          string
	Category    string
	Difficulty  Difficulty
	Explanation string
	RedFlags    []string
	Compose     func(f Fields) Draft
}

// TemplateID implements selector.Candidate.
func (t EmailTemplate) TemplateID() string { return t.ID }

// Level implements selector.Candidate.
func (t EmailTemplate) Level() Difficulty { return t.Difficulty }

// Headers is the forged header block shown with an email.
type Headers struct {
	Received       string `json:"received"`
	ReplyTo        string `json:"reply_to,omitempty"`
	XOriginatingIP string `json:"x_originating_ip"`
	SPF            string `json:"spf"`
	DKIM           string `json:"dkim"`
}

// Email is a rendered phishing email. Every email is phishing.
type Email struct {
	ID          string     `json:"id"`
	TemplateID  string     `json:"template_id"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	From        string     `json:"from"`
	To          string     `json:"to"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	Date        string     `json:"date"`
	Attachment  string     `json:"attachment,omitempty"`
	Headers     Headers    `json:"headers"`
	Label       Label      `json:"correct_answer"`
	Explanation string     `json:"explanation"`
	RedFlags    []string   `json:"red_flags"`
}
