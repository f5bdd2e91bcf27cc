package content

import "sort"

// ModuleCategory groups learning modules on the training page.
type ModuleCategory string

const (
	CategoryPhishing    ModuleCategory = "Phishing & Social Engineering"
	CategoryCredentials ModuleCategory = "Credential Safety"
	CategoryMalware     ModuleCategory = "Malware & Ransomware"
	CategoryGeneral     ModuleCategory = "General Cyber Awareness"
)

// AllModuleCategories returns the module categories in display order.
func AllModuleCategories() []ModuleCategory {
	return []ModuleCategory{CategoryPhishing, CategoryCredentials, CategoryMalware, CategoryGeneral}
}

// AttackType is the threat a module teaches about.
type AttackType string

const (
	AttackPhishing          AttackType = "phishing"
	AttackCredentialTheft   AttackType = "credential_theft"
	AttackRansomware        AttackType = "ransomware"
	AttackSocialEngineering AttackType = "social_engineering"
	AttackGeneral           AttackType = "general"
)

// Level is a module's reading level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
)

// ModuleXP is awarded the first time a module is completed.
const ModuleXP = 50

// Module is a short reading lesson.
type Module struct {
	ID           string         `json:"module_id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     ModuleCategory `json:"category"`
	AttackType   AttackType     `json:"attack_type"`
	Level        Level          `json:"difficulty"`
	Order        int            `json:"order_index"`
	WhyItMatters string         `json:"why_it_matters"`
	Body         string         `json:"content"`
}

var modules = []Module{
	{
		ID:           "phishing-identification",
		Title:        "Identifying Phishing Emails",
		Description:  "Learn to spot the telltale signs of phishing attempts",
		Category:     CategoryPhishing,
		AttackType:   AttackPhishing,
		Level:        LevelBeginner,
		Order:        1,
		WhyItMatters: "Phishing attacks account for 90% of data breaches. Learning to identify them protects you and your organization from credential theft, malware, and financial loss.",
		Body:         `Phishing emails often contain these red flags:

• Urgent or threatening language ("Your account will be suspended!")
• Generic greetings ("Dear Customer" instead of your name)
• Suspicious sender addresses (support@amaz0n-secure.com)
• Requests for sensitive information
• Poor grammar and spelling errors
• Mismatched or suspicious links`,
	},
	{
		ID:           "urgency-tactics",
		Title:        "Urgency & Fear Tactics",
		Description:  "Understand how attackers exploit emotions to bypass rational thinking",
		Category:     CategoryPhishing,
		AttackType:   AttackPhishing,
		Level:        LevelBeginner,
		Order:        2,
		WhyItMatters: "When stressed or rushed, people make poor security decisions. Recognizing these tactics gives you the mental space to respond rationally.",
		Body:         `Social engineers use psychological manipulation:

• TIME PRESSURE: "Act within 24 hours or lose access"
• FEAR: "Your account has been compromised"
• AUTHORITY: Impersonating executives or IT staff
• SCARCITY: "Limited time offer - verify now"
• CURIOSITY: "Someone shared a document with you"

Always pause and verify through official channels.`,
	},
	{
		ID:           "domain-spoofing",
		Title:        "Domain Spoofing & Look-alike URLs",
		Description:  "Detect fake domains designed to deceive",
		Category:     CategoryPhishing,
		AttackType:   AttackPhishing,
		Level:        LevelIntermediate,
		Order:        3,
		WhyItMatters: "A single click on a spoofed domain can lead to credential theft or malware installation. URL awareness is your first line of defense.",
		Body:         `Attackers create convincing fake domains:

• TYPOSQUATTING: googIe.com (capital i), g00gle.com
• SUBDOMAIN TRICKS: google.com.malicious-site.com
• HOMOGRAPH ATTACKS: Using similar-looking characters
• TLD SWAPPING: google.net instead of google.com

Always check:
1. The full URL before clicking
2. The domain in the address bar after loading
3. SSL certificate details`,
	},
	{
		ID:           "email-headers",
		Title:        "Email Header Analysis (Simplified)",
		Description:  "Basic email header inspection for authenticity verification",
		Category:     CategoryPhishing,
		AttackType:   AttackPhishing,
		Level:        LevelIntermediate,
		Order:        4,
		WhyItMatters: "Email headers reveal the true origin of messages. This knowledge helps verify legitimate communications from your organization.",
		Body:         `Key email header fields to check:

• FROM: Can be easily spoofed - don't trust alone
• REPLY-TO: If different from FROM, be suspicious
• RECEIVED: Shows the email's path - check originating IP
• SPF/DKIM/DMARC: Authentication results in headers

In most email clients, look for:
- "Show original" or "View headers"
- Check if SPF = pass and DKIM = pass`,
	},
	{
		ID:           "safe-link-hovering",
		Title:        "Safe Link-Hovering Techniques",
		Description:  "Preview links without risking your security",
		Category:     CategoryPhishing,
		AttackType:   AttackPhishing,
		Level:        LevelBeginner,
		Order:        5,
		WhyItMatters: "One wrong click can compromise your entire system. Link verification takes seconds but prevents hours of incident response.",
		Body:         `Before clicking any link:

1. HOVER (don't click) to preview the URL
2. Check the STATUS BAR at the bottom of your browser
3. Look for HTTPS and the correct domain
4. Be wary of URL SHORTENERS (bit.ly, tinyurl)
5. Use LINK SCANNERS for suspicious URLs

On mobile:
- Long-press to preview links
- Copy and paste into a URL checker`,
	},
	{
		ID:           "fake-login-pages",
		Title:        "Fake Login Pages & Credential Harvesting",
		Description:  "Identify cloned login pages designed to steal credentials",
		Category:     CategoryCredentials,
		AttackType:   AttackCredentialTheft,
		Level:        LevelBeginner,
		Order:        6,
		WhyItMatters: "Credential harvesting is the primary goal of most phishing attacks. Your username and password are the keys to your digital identity.",
		Body:         `Signs of a fake login page:

• URL doesn't match the official site
• Missing or invalid SSL certificate
• Slightly different design or logos
• Unusual form behavior (no password masking)
• Redirects from suspicious links

ALWAYS:
- Type the URL directly or use bookmarks
- Check for HTTPS and the padlock icon
- Verify the certificate details`,
	},
	{
		ID:           "https-explained",
		Title:        "HTTPS vs HTTP Explained",
		Description:  "Understand encryption and its security implications",
		Category:     CategoryCredentials,
		AttackType:   AttackCredentialTheft,
		Level:        LevelBeginner,
		Order:        7,
		WhyItMatters: "HTTPS protects your data from interception, but it doesn't guarantee the site is legitimate. Understanding this nuance is crucial.",
		Body:         `HTTP vs HTTPS:

HTTP (Insecure):
- Data sent in plain text
- Anyone can intercept credentials
- No identity verification

HTTPS (Secure):
- Encrypted connection
- Protects data in transit
- Verifies site identity

BUT HTTPS doesn't mean the site is safe!
- Attackers can get SSL certificates too
- Always verify the domain is correct`,
	},
	{
		ID:           "password-reuse-risks",
		Title:        "Password Reuse Risks",
		Description:  "Why unique passwords are essential for security",
		Category:     CategoryCredentials,
		AttackType:   AttackCredentialTheft,
		Level:        LevelBeginner,
		Order:        8,
		WhyItMatters: "Billions of credentials are leaked annually. If you reuse passwords, a breach anywhere becomes a breach everywhere.",
		Body:         `The Password Reuse Problem:

When you reuse passwords:
1. One breach exposes all accounts
2. Attackers use "credential stuffing"
3. Automated tools test stolen creds everywhere

SOLUTION:
- Use a password manager
- Generate unique passwords for each site
- Enable 2FA wherever possible
- Check haveibeenpwned.com regularly`,
	},
	{
		ID:           "two-factor-auth",
		Title:        "Two-Factor Authentication Importance",
		Description:  "Add an extra layer of security beyond passwords",
		Category:     CategoryCredentials,
		AttackType:   AttackCredentialTheft,
		Level:        LevelBeginner,
		Order:        9,
		WhyItMatters: "Even if your password is stolen, 2FA blocks unauthorized access. It's your last line of defense against credential theft.",
		Body:         `Types of 2FA (from weakest to strongest):

1. SMS CODES - Better than nothing, vulnerable to SIM swap
2. EMAIL CODES - Risky if email is compromised
3. AUTHENTICATOR APPS - Much more secure (TOTP)
4. HARDWARE KEYS - Most secure (YubiKey, etc.)

Enable 2FA on:
- Email accounts (most critical!)
- Banking and financial accounts
- Social media
- Work accounts`,
	},
	{
		ID:           "ransomware-basics",
		Title:        "What Ransomware Actually Is",
		Description:  "Understanding the ransomware threat landscape",
		Category:     CategoryMalware,
		AttackType:   AttackRansomware,
		Level:        LevelIntermediate,
		Order:        10,
		WhyItMatters: "Ransomware can destroy entire organizations. Understanding how it works is the first step to preventing infection.",
		Body:         `Ransomware is malware that:

1. ENCRYPTS your files with a secret key
2. DEMANDS payment (usually cryptocurrency)
3. THREATENS to delete or leak data

Common infection vectors:
- Phishing email attachments
- Malicious downloads
- Exploited vulnerabilities
- Compromised websites

Modern ransomware often:
- Spreads across networks
- Steals data before encrypting
- Targets backups first`,
	},
	{
		ID:           "ransom-payment-risks",
		Title:        "Why Paying Ransom is Dangerous",
		Description:  "The risks and consequences of ransom payments",
		Category:     CategoryMalware,
		AttackType:   AttackRansomware,
		Level:        LevelIntermediate,
		Order:        11,
		WhyItMatters: "Paying ransom perpetuates the criminal ecosystem and doesn't guarantee recovery. Prevention and backups are your best defense.",
		Body:         `Why you should NOT pay ransom:

1. NO GUARANTEE of decryption key
2. FUNDS criminal operations
3. MARKS you as a paying target
4. May VIOLATE laws (OFAC sanctions)
5. Decryptors may be FAULTY

Instead:
- Report to law enforcement
- Check for free decryptors (nomoreransom.org)
- Restore from backups
- Engage incident response experts`,
	},
	{
		ID:           "backup-recovery",
		Title:        "Backup & Recovery Basics",
		Description:  "Protect your data with proper backup strategies",
		Category:     CategoryMalware,
		AttackType:   AttackRansomware,
		Level:        LevelBeginner,
		Order:        12,
		WhyItMatters: "Good backups make ransomware attacks an inconvenience rather than a catastrophe. They're your insurance policy against data loss.",
		Body:         `The 3-2-1 Backup Rule:

3 - Keep THREE copies of data
2 - On TWO different media types
1 - With ONE copy offsite/offline

Backup best practices:
- Test restores regularly
- Keep backups OFFLINE (air-gapped)
- Encrypt backup data
- Automate the process
- Document recovery procedures`,
	},
	{
		ID:           "social-engineering-psychology",
		Title:        "Social Engineering Psychology",
		Description:  "The human vulnerabilities attackers exploit",
		Category:     CategoryGeneral,
		AttackType:   AttackSocialEngineering,
		Level:        LevelIntermediate,
		Order:        13,
		WhyItMatters: "Humans are the weakest link in security. Understanding manipulation tactics makes you resistant to social engineering.",
		Body:         `Psychological principles attackers use:

• RECIPROCITY: "I helped you, now help me"
• AUTHORITY: Impersonating bosses or IT
• SOCIAL PROOF: "Everyone else did this"
• LIKING: Building rapport before the ask
• COMMITMENT: Small requests leading to big ones
• SCARCITY: Limited time or availability

Defense: Always verify through separate channels.`,
	},
	{
		ID:           "zero-trust-mindset",
		Title:        "Zero-Trust Mindset (Simplified)",
		Description:  "Never trust, always verify - even inside your network",
		Category:     CategoryGeneral,
		AttackType:   AttackGeneral,
		Level:        LevelIntermediate,
		Order:        14,
		WhyItMatters: "Traditional perimeter security is obsolete. Zero trust acknowledges that threats can come from anywhere, even inside.",
		Body:         `Zero Trust Principles:

1. VERIFY EXPLICITLY
- Always authenticate and authorize
- Don't assume trust based on location

2. LEAST PRIVILEGE ACCESS
- Give minimum necessary permissions
- Remove access when not needed

3. ASSUME BREACH
- Act as if attackers are already inside
- Segment networks and limit blast radius`,
	},
	{
		ID:           "incident-reporting",
		Title:        "Incident Reporting Best Practices",
		Description:  "How to report security incidents effectively",
		Category:     CategoryGeneral,
		AttackType:   AttackGeneral,
		Level:        LevelBeginner,
		Order:        15,
		WhyItMatters: "Quick reporting limits damage. Security teams can't respond to threats they don't know about. Your vigilance protects everyone.",
		Body:         `When you suspect an incident:

1. DON'T PANIC or try to fix it yourself
2. DON'T DELETE evidence or forward suspicious emails
3. DO report immediately to IT/Security
4. DO document what you saw and when
5. DO disconnect if instructed (but don't power off)

What to report:
- Suspicious emails or messages
- Unexpected system behavior
- Unusual access requests
- Lost or stolen devices`,
	},
}

// Modules returns all learning modules sorted by Order.
func Modules() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// ModuleByID returns the module with the given ID.
func ModuleByID(id string) (Module, bool) {
	for _, m := range modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// NextModule returns the module that follows id in reading order.
func NextModule(id string) (Module, bool) {
	ms := Modules()
	for i, m := range ms {
		if m.ID == id && i+1 < len(ms) {
			return ms[i+1], true
		}
	}
	return Module{}, false
}
