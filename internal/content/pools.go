package content

import "strings"

// Random data pools drawn on by the renderer. Picks are uniform.
var (
	SenderNames = []string{
		"Michael Johnson", "Sarah Williams", "David Chen", "Jennifer Davis", "Robert Martinez",
		"Emily Brown", "James Wilson", "Lisa Anderson", "John Taylor", "Amanda Thompson",
		"Christopher Lee", "Jessica Garcia", "Matthew Robinson", "Ashley Clark", "Daniel Lewis",
		"Nicole Walker", "Andrew Hall", "Stephanie Allen", "Joshua Young", "Rachel King",
	}

	CompanyNames = []string{
		"TechCorp Solutions", "Global Dynamics", "Nexus Industries", "Apex Consulting", "Quantum Systems",
		"Pinnacle Group", "Synergy Partners", "Elevate Inc", "Catalyst Labs", "Horizon Ventures",
		"Summit Holdings", "Atlas Corp", "Velocity Tech", "Prism Analytics", "Fusion Enterprises",
	}

	BankNames = []string{
		"Bank of America", "Chase", "Wells Fargo", "Citibank", "Capital One",
		"US Bank", "PNC Bank", "TD Bank", "Truist", "First National Bank",
	}

	// Amounts are in dollars and formatted for display by the renderer.
	Amounts = []float64{1247, 3450, 5890, 892, 2175, 4320, 6750, 1890, 7500, 950}

	Deadlines = []string{
		"24 hours", "48 hours", "2 hours", "12 hours",
		"by end of day", "immediately", "within 1 hour", "before midnight",
	}

	SuspiciousIPs = []string{
		"185.147.213.45", "91.234.167.89", "45.227.253.102", "103.75.118.201", "77.83.247.156",
	}
)

// fakeDomains holds look-alike sending domains. Easier tiers use obvious
// character substitution, harder tiers hide the real brand in a subdomain.
var fakeDomains = map[Difficulty][]string{
	DifficultyEasy: {
		"amaz0n-secure.com", "paypa1-verify.com", "g00gle-support.net", "micros0ft-alert.com",
		"app1e-security.com", "netfl1x-billing.com", "faceb00k-verify.com", "linkedln-jobs.net",
	},
	DifficultyMedium: {
		"amazon-account-services.com", "paypal-secure-center.net", "google-verification.org",
		"microsoft-365-portal.com", "apple-id-support.net", "netflix-member-update.com",
		"accounts-facebook.net", "linkedin-careers-portal.com",
	},
	DifficultyHard: {
		"amazon.com.account-verify.info", "paypal.com.secure-update.net",
		"accounts.google.com.verification.click", "login.microsoft.com.portal-auth.net",
		"appleid.apple.com.secure.id-verify.com", "netflix.com.billing-update.info",
	},
}

// FakeDomains returns the look-alike domains for a difficulty. Unknown
// difficulties get the medium list.
func FakeDomains(d Difficulty) []string {
	if ds, ok := fakeDomains[d]; ok {
		return ds
	}
	return fakeDomains[DifficultyMedium]
}

// mailbox turns "Sarah Williams" into "sarah.williams".
func mailbox(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", ".")
}

// slug turns "Atlas Corp" into "atlascorp".
func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

func firstName(name string) string {
	first, _, _ := strings.Cut(name, " ")
	return first
}
