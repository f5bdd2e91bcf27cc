package content

// scenarios holds the fixed scenario pool: fifteen phishing and fifteen
// legitimate examples spread across every channel.
var scenarios = []ScenarioTemplate{
	// Phishing
	{
		ID:         "phish-1",
		Title:      "Password Expiry Notice",
		Difficulty: DifficultyEasy,
		Label:      LabelPhishing,
		Content: EmailContent{
			From:    "security@amaz0n-verify.com",
			To:      "you@company.com",
			Subject: "⚠️ PASSWORD EXPIRES IN 2 HOURS!!!",
			Body:    "URGENT: Your password is about to expire!\n\nClick here immediately to reset: https://amaz0n-verify.com/reset\n\nIf you don't act NOW, your account will be LOCKED!\n\nIT Support",
		},
		Explanation: "Fake domain (amaz0n-verify.com), excessive urgency, threatening language, and suspicious link.",
		RedFlags:    []string{"Fake domain with character substitution", "Excessive urgency and threats", "Generic signature", "Suspicious external link"},
	},
	{
		ID:         "phish-2",
		Title:      "CEO Wire Transfer Request",
		Difficulty: DifficultyMedium,
		Label:      LabelPhishing,
		Content: EmailContent{
			From:    "john.smith@company-secure.net",
			To:      "you@company.com",
			Subject: "Urgent: Wire Transfer Needed",
			Body:    "Hi,\n\nI need you to process a wire transfer of $15,000 immediately. I'm in a meeting and can't call.\n\nDon't tell anyone - it's for a confidential acquisition.\n\nJohn Smith\nCEO",
		},
		Explanation: "CEO fraud attempt. Real executives never request secret wire transfers via email.",
		RedFlags:    []string{"Request for secrecy", "Urgent wire transfer via email", "External domain pretending to be internal", "Can't verify via phone"},
	},
	{
		ID:         "phish-3",
		Title:      "Prize Winner SMS",
		Difficulty: DifficultyEasy,
		Label:      LabelPhishing,
		Content: SMSContent{
			Sender:  "+1-555-WINNER",
			Message: "CONGRATS! You won $1,000,000! Claim now: bit.ly/cl4im-pr1ze Reply STOP to opt out",
		},
		Explanation: "Classic prize scam. You can't win contests you didn't enter.",
		RedFlags:    []string{"Unsolicited prize notification", "Shortened/suspicious URL", "Too good to be true", "Unknown sender"},
	},
	{
		ID:         "phish-4",
		Title:      "Bank Alert SMS",
		Difficulty: DifficultyMedium,
		Label:      LabelPhishing,
		Content: SMSContent{
			Sender:  "CHASE-ALERT",
			Message: "Chase: Unusual activity detected on your account ending 4521. Verify immediately: chase-secure-verify.com or call 1-800-555-0199",
		},
		Explanation: "Fake bank alert with lookalike domain. Real banks use their official domains.",
		RedFlags:    []string{"Lookalike domain (not chase.com)", "Unknown phone number", "Urgency tactic", "Sender name can be spoofed"},
	},
	{
		ID:         "phish-5",
		Title:      "Fake PayPal Login",
		Difficulty: DifficultyEasy,
		Label:      LabelPhishing,
		Content: WebsiteContent{
			URL:   "https://paypa1-secure.com/login",
			Title: "PayPal - Log In",
			Body:  "Log in to your PayPal account to verify recent activity. Enter your email and password below.",
		},
		Explanation: "Phishing website with lookalike domain (paypa1 with number 1 instead of L).",
		RedFlags:    []string{"Fake domain (paypa1 not paypal)", "Asking for credentials", "No https lock or padlock icon faked", "Unsolicited login request"},
	},
	{
		ID:         "phish-6",
		Title:      "Fake LinkedIn Job Offer",
		Difficulty: DifficultyMedium,
		Label:      LabelPhishing,
		Content: SocialContent{
			Platform: "LinkedIn",
			Username: "Sarah_HR_Recruiter2024",
			Post:     "Hi! I noticed your profile and we have a REMOTE position paying $150k+! No experience needed!\n\nClick here to apply: linkedin-jobs-apply.net\n\nHurry, only 3 spots left! 🔥",
		},
		Explanation: "Fake recruiter with suspicious account name and external link promising unrealistic salary.",
		RedFlags:    []string{"Too-good-to-be-true salary", "External link (not linkedin.com)", "Urgency tactics", "Generic outreach", "Suspicious username pattern"},
	},
	{
		ID:         "phish-7",
		Title:      "IRS Phone Scam",
		Difficulty: DifficultyHard,
		Label:      LabelPhishing,
		Content: VoiceContent{
			CallerNumber: "+1-202-555-0147",
			Transcript:   "\"This is Officer James Wilson from the Internal Revenue Service. Our records show you owe $4,892 in back taxes. If you don't pay immediately via gift cards, a warrant will be issued for your arrest. Press 1 to speak with an agent.\"",
		},
		Explanation: "The IRS never demands immediate payment via gift cards or threatens arrest over the phone.",
		RedFlags:    []string{"IRS never calls demanding immediate payment", "Gift card payment request", "Arrest threats", "Pressure to act immediately"},
	},
	{
		ID:         "phish-8",
		Title:      "Parking Meter QR Code",
		Difficulty: DifficultyMedium,
		Label:      LabelPhishing,
		Content: QRCodeContent{
			Context:     "QR code sticker placed over the official parking meter payment code",
			Destination: "parkingpay-city.net (redirects to payment form asking for credit card)",
		},
		Explanation: "Scammers place fake QR codes over legitimate ones to steal payment information.",
		RedFlags:    []string{"QR code looks like a sticker placed over another", "Destination URL is not the official city website", "Asks for full credit card details"},
	},
	{
		ID:         "phish-9",
		Title:      "Vendor Invoice Change",
		Difficulty: DifficultyHard,
		Label:      LabelPhishing,
		Content: EmailContent{
			From:    "accounts@vendor-company.com",
			To:      "accounts@yourcompany.com",
			Subject: "Updated Banking Details - Invoice #INV-2024-8847",
			Body:    "Dear Accounts Payable,\n\nPlease note our banking details have changed for future payments. Update our account information for Invoice #INV-2024-8847:\n\nNew Bank: First National Trust\nAccount: 8472910563\nRouting: 026009593\n\nThank you for your continued partnership.\n\nAccounts Department\nVendor Company Inc.",
		},
		Explanation: "Vendor email compromise - always verify banking changes via phone using known numbers.",
		RedFlags:    []string{"Banking detail change request", "Should be verified via phone", "Check if domain matches known vendor exactly"},
	},
	{
		ID:         "phish-10",
		Title:      "Package Delivery Scam",
		Difficulty: DifficultyEasy,
		Label:      LabelPhishing,
		Content: EmailContent{
			From:    "delivery@fedex-tracking-update.com",
			To:      "you@email.com",
			Subject: "FedEx: Delivery Failed - Action Required",
			Body:    "Your package could not be delivered.\n\nTracking #: 7849201856321\n\nReason: Incomplete address\n\nConfirm your address now: https://fedex-tracking-update.com/confirm\n\nIf not confirmed within 24 hours, package will be returned to sender.",
		},
		Explanation: "Fake FedEx domain. Real FedEx uses fedex.com only.",
		RedFlags:    []string{"Fake domain (not fedex.com)", "Urgency with 24-hour deadline", "Generic tracking format", "Unsolicited delivery notice"},
	},
	{
		ID:         "phish-11",
		Title:      "Two-Factor Code Request",
		Difficulty: DifficultyHard,
		Label:      LabelPhishing,
		Content: SMSContent{
			Sender:  "Google",
			Message: "Your Google verification code is 847291. If you did not request this, someone may be trying to access your account. Reply STOP to block them.",
		},
		Explanation: "Scammer trying to get you to share a 2FA code. Never share verification codes.",
		RedFlags:    []string{"Asking for reaction to unsolicited 2FA code", "Real services never ask you to reply with codes", "Social engineering to \"block\" attacker"},
	},
	{
		ID:         "phish-12",
		Title:      "Microsoft 365 Login",
		Difficulty: DifficultyHard,
		Label:      LabelPhishing,
		Content: WebsiteContent{
			URL:   "https://login.microsoft.com.auth-verify.net/oauth",
			Title: "Sign in - Microsoft 365",
			Body:  "Sign in with your organizational account to access SharePoint documents shared with you.",
		},
		Explanation: "Subdomain spoofing - the real domain is auth-verify.net, not microsoft.com.",
		RedFlags:    []string{"Domain is auth-verify.net, not microsoft.com", "Microsoft domain used as subdomain", "Often linked from phishing emails"},
	},
	{
		ID:         "phish-13",
		Title:      "Crypto Giveaway Scam",
		Difficulty: DifficultyEasy,
		Label:      LabelPhishing,
		Content: SocialContent{
			Platform: "Twitter/X",
			Username: "EIonMuskOfficial",
			Post:     "I'm giving back to the community! 🎉\n\nSend 0.1 BTC to the address below and receive 1 BTC back!\n\nOnly for the next 30 minutes! Don't miss out!\n\nbc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
		},
		Explanation: "No one gives away free crypto. The username has a capital I instead of lowercase L.",
		RedFlags:    []string{"Impersonator account (EIon not Elon)", "Too good to be true", "Crypto giveaway scam", "Artificial urgency"},
	},
	{
		ID:         "phish-14",
		Title:      "Tech Support Scam Call",
		Difficulty: DifficultyMedium,
		Label:      LabelPhishing,
		Content: VoiceContent{
			CallerNumber: "+1-888-555-0123",
			Transcript:   "\"Hello, this is Microsoft Technical Support. We've detected a virus on your computer that is sending your personal data to hackers. We need remote access to fix this immediately. Please go to anydesk.com and give me the access code.\"",
		},
		Explanation: "Microsoft never makes unsolicited calls. This is a tech support scam.",
		RedFlags:    []string{"Microsoft doesn't call unsolicited", "Request for remote access", "Fear tactics about viruses", "Urgency to act now"},
	},
	{
		ID:         "phish-15",
		Title:      "Free WiFi QR Code",
		Difficulty: DifficultyEasy,
		Label:      LabelPhishing,
		Content: QRCodeContent{
			Context:     "Flyer at coffee shop: \"SCAN FOR FREE PREMIUM WIFI - No password needed!\"",
			Destination: "Redirects to a page asking for email and credit card \"for verification\"",
		},
		Explanation: "Legitimate free WiFi doesn't require credit card \"verification\".",
		RedFlags:    []string{"Free WiFi shouldn't need credit card", "Unknown QR code source", "Too convenient offer", "Data harvesting attempt"},
	},

	// Legitimate
	{
		ID:         "legit-1",
		Title:      "IT Password Reset",
		Difficulty: DifficultyMedium,
		Label:      LabelLegitimate,
		Content: EmailContent{
			From:    "it-helpdesk@yourcompany.com",
			To:      "you@yourcompany.com",
			Subject: "Password expiration reminder",
			Body:    "Hi,\n\nYour network password will expire in 14 days. Please visit the internal IT portal at https://it.yourcompany.com/password to reset it.\n\nIf you have questions, contact the Help Desk at ext. 4357.\n\nIT Department",
		},
		Explanation:     "Legitimate IT email from your company domain with reasonable timeline and internal portal link.",
		TrustIndicators: []string{"Sent from company domain", "Links to internal portal", "Reasonable 14-day timeline", "Contact info provided"},
	},
	{
		ID:         "legit-2",
		Title:      "Amazon Order Confirmation",
		Difficulty: DifficultyEasy,
		Label:      LabelLegitimate,
		Content: EmailContent{
			From:    "auto-confirm@amazon.com",
			To:      "you@email.com",
			Subject: "Your Amazon.com order #112-4847291-8472910",
			Body:    "Hello,\n\nThank you for your order!\n\nOrder #112-4847291-8472910\nItem: Wireless Mouse\nTotal: $24.99\n\nTrack your package at amazon.com/orders\n\nThank you for shopping with us.\n\nAmazon.com",
		},
		Explanation:     "Legitimate Amazon email from official domain confirming a real order.",
		TrustIndicators: []string{"Official amazon.com domain", "Specific order details", "Links to amazon.com", "No urgency or threats"},
	},
	{
		ID:         "legit-3",
		Title:      "Bank Transaction Alert",
		Difficulty: DifficultyMedium,
		Label:      LabelLegitimate,
		Content: SMSContent{
			Sender:  "73748 (Chase)",
			Message: "Chase: A $42.50 purchase was made at STARBUCKS on card ending 1234. If you don't recognize this, call 1-800-935-9935.",
		},
		Explanation:     "Legitimate bank alert from official short code with the real Chase fraud number.",
		TrustIndicators: []string{"Official Chase short code", "Specific transaction details", "Official Chase phone number", "No links to click"},
	},
	{
		ID:         "legit-4",
		Title:      "Zoom Meeting Invite",
		Difficulty: DifficultyHard,
		Label:      LabelLegitimate,
		Content: EmailContent{
			From:    "no-reply@zoom.us",
			To:      "you@company.com",
			Subject: "Sarah Johnson invited you to a Zoom meeting",
			Body:    "Hi,\n\nSarah Johnson is inviting you to a scheduled Zoom meeting.\n\nTopic: Q4 Planning Session\nTime: Tomorrow at 2:00 PM EST\n\nJoin Zoom Meeting:\nhttps://zoom.us/j/84729105632\n\nMeeting ID: 847 2910 5632\nPasscode: 482910",
		},
		Explanation:     "Legitimate Zoom invite from official domain with proper meeting details.",
		TrustIndicators: []string{"Official zoom.us domain", "Specific meeting details", "Known colleague name", "Standard Zoom format"},
	},
	{
		ID:         "legit-5",
		Title:      "Doctor Appointment Reminder",
		Difficulty: DifficultyEasy,
		Label:      LabelLegitimate,
		Content: SMSContent{
			Sender:  "74839 (HealthCare)",
			Message: "Reminder: You have an appointment with Dr. Smith tomorrow at 10:30 AM. Reply C to confirm or call 555-123-4567 to reschedule.",
		},
		Explanation:     "Legitimate appointment reminder from healthcare provider you have a relationship with.",
		TrustIndicators: []string{"Expected reminder for existing appointment", "Real doctor name", "Office phone number", "No links or urgent demands"},
	},
	{
		ID:         "legit-6",
		Title:      "Official Bank Website",
		Difficulty: DifficultyMedium,
		Label:      LabelLegitimate,
		Content: WebsiteContent{
			URL:   "https://www.chase.com/personal/banking",
			Title: "Personal Banking | Chase",
			Body:  "Access your accounts, pay bills, and manage your finances with Chase Online Banking.",
		},
		Explanation:     "Official Chase website with correct domain and HTTPS.",
		TrustIndicators: []string{"Official chase.com domain", "HTTPS secure connection", "Standard banking features", "No typos in URL"},
	},
	{
		ID:         "legit-7",
		Title:      "Verified Company Update",
		Difficulty: DifficultyHard,
		Label:      LabelLegitimate,
		Content: SocialContent{
			Platform: "LinkedIn",
			Username: "Microsoft (Verified ✓)",
			Post:     "We're excited to announce the general availability of Microsoft 365 Copilot! Learn more about AI-powered productivity at microsoft.com/copilot",
		},
		Explanation:     "Verified company account posting about their own product with official link.",
		TrustIndicators: []string{"Verified company account", "Links to official domain", "Announcement matches public news", "No personal info requests"},
	},
	{
		ID:         "legit-8",
		Title:      "Colleague File Share",
		Difficulty: DifficultyMedium,
		Label:      LabelLegitimate,
		Content: EmailContent{
			From:    "mike.johnson@yourcompany.com",
			To:      "you@yourcompany.com",
			Subject: "Shared: Q4 Budget Spreadsheet",
			Body:    "Hi,\n\nI've shared the Q4 budget spreadsheet we discussed in yesterday's meeting.\n\nAccess it here: https://yourcompany.sharepoint.com/sites/finance/q4-budget\n\nLet me know if you have questions.\n\nMike",
		},
		Explanation:     "Legitimate file share from known colleague through company SharePoint.",
		TrustIndicators: []string{"From known colleague", "Company email domain", "References recent meeting", "Internal SharePoint link"},
	},
	{
		ID:         "legit-9",
		Title:      "Pharmacy Prescription Ready",
		Difficulty: DifficultyMedium,
		Label:      LabelLegitimate,
		Content: VoiceContent{
			CallerNumber: "+1-555-456-7890 (CVS Pharmacy)",
			Transcript:   "\"This is CVS Pharmacy calling for [Your Name]. Your prescription is ready for pickup at our Main Street location. The pharmacy closes at 9 PM. If you have questions, call us at 555-456-7890.\"",
		},
		Explanation:     "Legitimate pharmacy call from location where you have prescriptions.",
		TrustIndicators: []string{"Expected call (you have a prescription)", "Specific pharmacy location", "Call-back number provided", "No urgent demands or threats"},
	},
	{
		ID:         "legit-10",
		Title:      "Restaurant Menu QR",
		Difficulty: DifficultyEasy,
		Label:      LabelLegitimate,
		Content: QRCodeContent{
			Context:     "QR code printed on the table at a restaurant with their logo",
			Destination: "Opens the restaurant's official website menu page",
		},
		Explanation:     "Legitimate QR code at a restaurant for viewing their menu.",
		TrustIndicators: []string{"Printed with restaurant branding", "Goes to official restaurant website", "Standard practice post-COVID", "No personal info required"},
	},
	{
		ID:         "legit-11",
		Title:      "Password Reset You Requested",
		Difficulty: DifficultyHard,
		Label:      LabelLegitimate,
		Content: EmailContent{
			From:    "noreply@github.com",
			To:      "you@email.com",
			Subject: "Reset your GitHub password",
			Body:    "Hey there!\n\nWe heard you need a password reset. Click the button below to reset it:\n\nhttps://github.com/password_reset/abcd1234...\n\nThis link expires in 24 hours.\n\nIf you didn't request this, you can safely ignore this email.\n\nThanks,\nThe GitHub Team",
		},
		Explanation:     "Legitimate password reset email that YOU initiated from official GitHub.",
		TrustIndicators: []string{"You requested this reset", "Official github.com domain", "Standard reset format", "Option to ignore if not requested"},
	},
	{
		ID:         "legit-12",
		Title:      "Two-Factor Authentication Code",
		Difficulty: DifficultyHard,
		Label:      LabelLegitimate,
		Content: SMSContent{
			Sender:  "Google",
			Message: "G-847291 is your Google verification code.",
		},
		Explanation:     "Legitimate 2FA code you requested while logging in.",
		TrustIndicators: []string{"You just tried to log in", "Standard Google code format (G-XXXXXX)", "No links or requests", "Short and simple"},
	},
	{
		ID:         "legit-13",
		Title:      "Google Search Results",
		Difficulty: DifficultyEasy,
		Label:      LabelLegitimate,
		Content: WebsiteContent{
			URL:   "https://www.google.com/search?q=cybersecurity+training",
			Title: "cybersecurity training - Google Search",
			Body:  "Standard Google search results page showing various cybersecurity training resources.",
		},
		Explanation:     "Official Google website performing a search.",
		TrustIndicators: []string{"Official google.com domain", "Standard search results", "HTTPS connection", "You initiated the search"},
	},
	{
		ID:         "legit-14",
		Title:      "Friend's Facebook Post",
		Difficulty: DifficultyMedium,
		Label:      LabelLegitimate,
		Content: SocialContent{
			Platform: "Facebook",
			Username: "John Smith (Your Friend)",
			Post:     "Just got back from an amazing vacation in Hawaii! 🌴 Check out these sunset photos. Hawaii is definitely on my bucket list now! #vacation #hawaii",
		},
		Explanation:     "Normal social media post from a friend you know in real life.",
		TrustIndicators: []string{"Known friend's account", "Personal content matching their life", "No links or requests", "Normal social behavior"},
	},
	{
		ID:         "legit-15",
		Title:      "Newsletter You Subscribed To",
		Difficulty: DifficultyEasy,
		Label:      LabelLegitimate,
		Content: EmailContent{
			From:    "newsletter@techcrunch.com",
			To:      "you@email.com",
			Subject: "TechCrunch Daily: Top Stories",
			Body:    "Good morning!\n\nHere are today's top tech stories:\n\n1. Apple announces new product lineup\n2. AI startup raises $50M in funding\n3. New cybersecurity threats emerging\n\nRead more at techcrunch.com\n\nUnsubscribe: techcrunch.com/unsubscribe",
		},
		Explanation:     "Newsletter from a publication you subscribed to with easy unsubscribe option.",
		TrustIndicators: []string{"You subscribed to this", "Official domain", "Unsubscribe option provided", "Expected content"},
	},
}
