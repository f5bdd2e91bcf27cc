package content

// Package-level indices over the static pools, built once at init.
var (
	scenarioByID map[string]*ScenarioTemplate
	emailByID    map[string]*EmailTemplate
	categories   []string
)

func init() {
	scenarioByID = make(map[string]*ScenarioTemplate, len(scenarios))
	for i := range scenarios {
		scenarioByID[scenarios[i].ID] = &scenarios[i]
	}

	emailByID = make(map[string]*EmailTemplate, len(emailTemplates))
	seen := make(map[string]bool)
	for i := range emailTemplates {
		t := &emailTemplates[i]
		emailByID[t.ID] = t
		if !seen[t.Category] {
			seen[t.Category] = true
			categories = append(categories, t.Category)
		}
	}
}

// Scenarios returns a copy of the scenario pool.
func Scenarios() []ScenarioTemplate {
	out := make([]ScenarioTemplate, len(scenarios))
	copy(out, scenarios)
	return out
}

// EmailTemplates returns a copy of the email template pool.
func EmailTemplates() []EmailTemplate {
	out := make([]EmailTemplate, len(emailTemplates))
	copy(out, emailTemplates)
	return out
}

// EmailCategories returns the distinct email categories in pool order.
func EmailCategories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ScenarioByID returns the scenario template with the given ID.
func ScenarioByID(id string) (ScenarioTemplate, bool) {
	t, ok := scenarioByID[id]
	if !ok {
		return ScenarioTemplate{}, false
	}
	return *t, true
}

// EmailTemplateByID returns the email template with the given ID.
func EmailTemplateByID(id string) (EmailTemplate, bool) {
	t, ok := emailByID[id]
	if !ok {
		return EmailTemplate{}, false
	}
	return *t, true
}

// LabelCounts returns how many scenarios carry each label.
func LabelCounts() map[Label]int {
	counts := make(map[Label]int, 2)
	for _, s := range scenarios {
		counts[s.Label]++
	}
	return counts
}
