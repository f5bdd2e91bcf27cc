package content

import (
	"fmt"
	"strings"
)

// Email template categories.
const (
	CategoryExecutiveFraud = "CEO/Executive Fraud"
	CategoryPasswordReset  = "IT Password Reset"
	CategoryInvoice        = "Invoice/Payment Scams"
	CategoryDelivery       = "Package Delivery"
	CategoryBank           = "Bank Alerts"
	CategoryPayroll        = "HR/Payroll"
)

// Recipient is the inbox every generated email is addressed to.
const Recipient = "you@company.com"

var emailTemplates = []EmailTemplate{
	// CEO/Executive Fraud
	{
		ID:          "ceo-wire-urgent",
		Category:    CategoryExecutiveFraud,
		Difficulty:  DifficultyEasy,
		Explanation: "Classic CEO fraud/Business Email Compromise. Real executives never request urgent wire transfers via email asking for secrecy. Always verify through a known phone number.",
		RedFlags: []string{
			"Urgency and pressure tactics",
			"Requests secrecy (\"don't tell anyone\")",
			"Fake domain not matching company",
			"Wire transfer request via email",
			"Multiple exclamation marks",
			"No proper email signature",
		},
		Compose: func(f Fields) Draft {
			sender, amount, domain := f.SenderName(), f.Amount(), f.Domain(DifficultyEasy)
			return Draft{
				From:    fmt.Sprintf("%s <ceo@%s>", sender, domain),
				Subject: "URGENT - Need wire transfer NOW!!!",
				Body: fmt.Sprintf(`Hi,

I need you to process a wire transfer of %s IMMEDIATELY. I'm in an important meeting and can't call.

Don't tell anyone about this. It's confidential.

Wire to: Account ending 4521
Bank: International Trust Bank

Do this NOW and confirm when done.

Thanks,
%s
CEO

Sent from my iPhone`, amount, firstName(sender)),
				Domain: domain,
			}
		},
	},
	{
		ID:          "ceo-gift-cards",
		Category:    CategoryExecutiveFraud,
		Difficulty:  DifficultyEasy,
		Explanation: "Gift card scams are extremely common. No legitimate business transaction requires gift card codes sent via email. Gift cards are untraceable cash equivalents.",
		RedFlags: []string{
			"Gift card request via email",
			"Requests codes/PINs over email",
			"Secrecy request",
			"Promise of reimbursement",
			"Informal tone from executive",
		},
		Compose: func(f Fields) Draft {
			sender, domain := f.SenderName(), f.Domain(DifficultyEasy)
			return Draft{
				From:    fmt.Sprintf("%s <%s@%s>", sender, mailbox(sender), domain),
				Subject: "Quick favor needed - Gift cards",
				Body: fmt.Sprintf(`Hey,

Are you available? I need you to purchase some gift cards for client appreciation. Don't want to announce it yet.

Buy 5 Amazon gift cards, $200 each ($1,000 total).

Send me the card numbers and PINs when done. I'll reimburse you.

Very busy right now so just email the codes.

%s`, sender),
				Domain: domain,
			}
		},
	},
	{
		ID:          "ceo-acquisition-wire",
		Category:    CategoryExecutiveFraud,
		Difficulty:  DifficultyMedium,
		Explanation: "Sophisticated BEC attack using fake acquisition as pretense. The domain looks professional but isn't your company's. Always verify large transactions through established protocols.",
		RedFlags: []string{
			"Confidentiality/secrecy request",
			"External domain (not company email)",
			"Wire transfer request via email",
			"Reference to meetings you weren't in",
			"Pressure to act quickly",
		},
		Compose: func(f Fields) Draft {
			sender, company, amount, domain := f.SenderName(), f.Company(), f.Amount(), f.Domain(DifficultyMedium)
			return Draft{
				From:    fmt.Sprintf("%s <%s@%s>", sender, mailbox(sender), domain),
				Subject: fmt.Sprintf("Confidential: %s Acquisition Payment", company),
				Body: fmt.Sprintf(`Good afternoon,

As discussed in yesterday's board meeting, we're moving forward with the %[1]s acquisition. I need you to process the initial payment of %[2]s to their holding company.

This must remain strictly confidential until the public announcement next week. Please don't discuss with other team members.

Wire details:
Bank: First International Trust
Account: 847291056
Routing: 026009593
Reference: %[3]s-ACQ-2024

Please confirm once processed. I'm in back-to-back meetings but checking email.

Best regards,
%[4]s
Chief Executive Officer`, company, amount, strings.ToUpper(slug(company)), sender),
				Domain: domain,
			}
		},
	},
	{
		ID:          "ceo-vendor-payment",
		Category:    CategoryExecutiveFraud,
		Difficulty:  DifficultyHard,
		Explanation: "Vendor payment redirection is very sophisticated. The only red flag may be the changed banking details. Always call vendors using known numbers to verify any payment changes.",
		RedFlags: []string{
			"Request to change banking details",
			"Vendor payment redirection",
			"Urgency with deadline",
			"Claims pre-verification (can't be confirmed)",
		},
		Compose: func(f Fields) Draft {
			sender, company, amount, domain, ref := f.SenderName(), f.Company(), f.Amount(), f.Domain(DifficultyHard), f.Reference()
			return Draft{
				From:    fmt.Sprintf("%s <%s@company.com>", sender, mailbox(sender)),
				Subject: fmt.Sprintf("Re: %s Invoice %s - Updated Payment Details", company, ref),
				Body: fmt.Sprintf(`Hi,

Following up on the %[1]s invoice we discussed. They've notified us of updated banking details for this payment.

Please update the payment for Invoice %[2]s (%[3]s) to the following account before processing:

New Bank: Metropolitan Commercial Bank
New Account: 7829401563
New Routing: 026013356

%[1]s is requesting we complete this by Friday to maintain our preferred vendor status. I've already verified with their CFO.

Let me know once updated.

Thanks,
%[4]s
CEO | %[5]s
Direct: (555) 847-2910`, company, ref, amount, sender, f.Company()),
				Domain: domain,
			}
		},
	},
	{
		ID:          "ceo-tax-docs",
		Category:    CategoryExecutiveFraud,
		Difficulty:  DifficultyMedium,
		Explanation: "W-2 phishing targets payroll staff to steal employee identities. Legitimate auditors have secure portals. Never email sensitive employee data.",
		RedFlags: []string{
			"Request for bulk employee PII",
			"SSN request via email",
			"Urgency/time pressure",
			"External domain",
			"Audit as excuse",
		},
		Compose: func(f Fields) Draft {
			sender, domain := f.SenderName(), f.Domain(DifficultyMedium)
			return Draft{
				From:    fmt.Sprintf("%s <%s@%s>", sender, mailbox(sender), domain),
				Subject: "Urgent: W-2 Forms Needed for All Employees",
				Body: fmt.Sprintf(`Hi,

Our external auditors need copies of all employee W-2 forms for the last tax year review. Please compile and send to me as soon as possible.

Include:
- Full names
- Social Security Numbers
- Salary information
- Home addresses

This is time-sensitive for the audit deadline. Please send by end of day.

Thank you,
%s
Chief Financial Officer`, sender),
				Domain: domain,
			}
		},
	},

	// IT Password Reset
	{
		ID:          "it-password-expiry",
		Category:    CategoryPasswordReset,
		Difficulty:  DifficultyEasy,
		Explanation: "Classic password phishing with urgency. Real IT departments provide password reset through official portals, not email links. The domain is clearly fake.",
		RedFlags: []string{
			"Excessive urgency symbols (⚠️)",
			"Threatening language",
			"Suspicious domain",
			"Generic \"IT Support Team\"",
			"Fear-based messaging",
		},
		Compose: func(f Fields) Draft {
			domain, deadline := f.Domain(DifficultyEasy), f.Deadline()
			return Draft{
				From:    fmt.Sprintf("IT HelpDesk <support@%s>", domain),
				Subject: fmt.Sprintf("⚠️ PASSWORD EXPIRES IN %s ⚠️", strings.ToUpper(deadline)),
				Body: fmt.Sprintf(`ATTENTION: Your password expires in %s!

Your network password is about to expire. To avoid being locked out of all company systems, you must reset it immediately.

CLICK HERE TO RESET NOW:
https://%s/password-reset

If you do not reset your password, you will lose access to:
❌ Email
❌ VPN
❌ All company applications

Reset now to avoid disruption!

IT Support Team`, deadline, domain),
				Domain: domain,
			}
		},
	},
	{
		ID:          "it-security-update",
		Category:    CategoryPasswordReset,
		Difficulty:  DifficultyMedium,
		Explanation: "MFA enrollment phishing - ironically uses security as the lure. Legitimate MFA enrollment happens through internal IT portals or in-person. Never enter passwords via email links.",
		RedFlags: []string{
			"Requests current password",
			"External domain for IT service",
			"Deadline pressure",
			"Generic signature",
		},
		Compose: func(f Fields) Draft {
			domain := f.Domain(DifficultyMedium)
			return Draft{
				From:    fmt.Sprintf("IT Security <noreply@%s>", domain),
				Subject: "Security Update Required: Multi-Factor Authentication",
				Body: fmt.Sprintf(`Dear Employee,

As part of our ongoing security improvements, all employees must re-enroll in Multi-Factor Authentication by the end of this week.

To complete your MFA enrollment:
1. Click the secure link below
2. Enter your current password
3. Follow the setup wizard

Secure Enrollment Link:
https://%s/mfa-enrollment

Note: Your current password is required to verify your identity before enrollment.

If you have questions, contact the IT Help Desk.

Best regards,
IT Security Team`, domain),
				Domain: domain,
			}
		},
	},
	{
		ID:          "it-mailbox-full",
		Category:    CategoryPasswordReset,
		Difficulty:  DifficultyEasy,
		Explanation: "Mailbox quota scams are very common. Your IT department manages email quotas internally and would never ask you to click external links to \"upgrade.\"",
		RedFlags: []string{
			"Mailbox quota scam",
			"FREE upgrade offer",
			"Suspension threat",
			"Suspicious domain",
			"All caps WARNING",
		},
		Compose: func(f Fields) Draft {
			domain := f.Domain(DifficultyEasy)
			return Draft{
				From:    fmt.Sprintf("Mail Administrator <admin@%s>", domain),
				Subject: "MAILBOX QUOTA EXCEEDED - Action Required",
				Body: fmt.Sprintf(`Your mailbox has exceeded its storage limit!

Current Usage: 98.7%% (4.93 GB of 5 GB)

You cannot send or receive new emails until you:
1. Delete old emails, OR
2. Upgrade your mailbox quota

To upgrade your quota for FREE, click below:
https://%s/mailbox-upgrade

WARNING: If not resolved within 24 hours, your account will be suspended.

Mail System Administrator`, domain),
				Domain: domain,
			}
		},
	},
	{
		ID:          "it-vpn-update",
		Category:    CategoryPasswordReset,
		Difficulty:  DifficultyHard,
		Explanation: "Software update phishing often leads to malware installation. Real IT pushes updates through managed systems, not email links. The CVE number is used to add false credibility.",
		RedFlags: []string{
			"Download link for software",
			"Requests admin credentials",
			"Subdomain spoofing in URL",
			"CVE reference adds false legitimacy",
		},
		Compose: func(f Fields) Draft {
			domain := f.Domain(DifficultyHard)
			link := "https://" + domain + "/vpn-update"
			if strings.Contains(domain, ".com.") {
				link = "https://vpn-update." + domain
			}
			return Draft{
				From:    "IT Infrastructure <vpn-support@company.com>",
				Subject: "VPN Client Update Required - Version 4.2.1",
				Body: fmt.Sprintf(`Hello,

A critical security update is available for the corporate VPN client. All remote workers must update to version 4.2.1 by Friday.

This update patches CVE-2024-21887, a high-severity vulnerability affecting remote access.

To update:
1. Click the link below to download the update package
2. Run the installer (requires admin credentials)
3. Restart your computer

Download Update:
%s

For assistance, contact the IT Help Desk at ext. 4357.

Best regards,
Network Operations Team`, link),
				Domain: domain,
			}
		},
	},
	{
		ID:          "it-account-suspended",
		Category:    CategoryPasswordReset,
		Difficulty:  DifficultyMedium,
		Explanation: "Account suspension scams use fear of foreign hackers to make you act quickly. Real security teams have different verification processes and wouldn't use external links.",
		RedFlags: []string{
			"Scary foreign location",
			"Account suspension claim",
			"Must verify even if legit",
			"External domain",
		},
		Compose: func(f Fields) Draft {
			domain := f.Domain(DifficultyMedium)
			return Draft{
				From:    fmt.Sprintf("Account Security <security@%s>", domain),
				Subject: "Account Temporarily Suspended - Unusual Activity Detected",
				Body: fmt.Sprintf(`We detected unusual sign-in activity on your account:

Location: Moscow, Russia
IP Address: %s
Device: Unknown Linux Device
Time: %s

If this wasn't you, your account has been temporarily suspended for your protection.

To restore access, verify your identity:
https://%s/verify-identity

If this was you, please still verify to remove the security hold.

Security Team`, f.Pick(SuspiciousIPs), f.Timestamp(), domain),
				Domain: domain,
			}
		},
	},

	// Invoice/Payment Scams
	{
		ID:          "invoice-overdue",
		Category:    CategoryInvoice,
		Difficulty:  DifficultyEasy,
		Explanation: "Fake invoice scams pressure you into paying invoices you never incurred. The aggressive collections threat is designed to bypass verification. Always verify invoices with your accounting department.",
		RedFlags: []string{
			"Collections threat",
			"Extreme urgency",
			"Unknown vendor",
			"Suspicious domain",
			"PDF attachment (potential malware)",
		},
		Compose: func(f Fields) Draft {
			company, amount, ref, domain := f.Company(), f.Amount(), f.Reference(), f.Domain(DifficultyEasy)
			return Draft{
				From:    fmt.Sprintf("%s Billing <billing@%s>", company, domain),
				Subject: fmt.Sprintf("OVERDUE: Invoice %s - FINAL NOTICE BEFORE COLLECTIONS", ref),
				Body: fmt.Sprintf(`FINAL NOTICE

Invoice Number: %[1]s
Amount Due: %[2]s
Status: 45 DAYS OVERDUE

This is your FINAL WARNING before we transfer your account to our collections agency.

To avoid collection fees and credit damage, pay immediately:
https://%[3]s/pay-invoice/%[1]s

If payment is not received within 48 hours, additional fees of $250 will be added.

Accounts Receivable
%[4]s`, ref, amount, domain, company),
				Attachment: fmt.Sprintf("Invoice_%s.pdf", ref),
				Domain:     domain,
			}
		},
	},
	{
		ID:          "invoice-updated-details",
		Category:    CategoryInvoice,
		Difficulty:  DifficultyHard,
		Explanation: "Payment redirection fraud is very sophisticated. The email looks legitimate but the new bank account is fraudulent. ALWAYS verify banking changes by calling a known number.",
		RedFlags: []string{
			"Banking details change request",
			"LLC variation of company name",
			"No official letterhead",
			"Asks to disregard previous instructions",
		},
		Compose: func(f Fields) Draft {
			company, amount, ref, sender := f.Company(), f.Amount(), f.Reference(), f.SenderName()
			domain := slug(company) + ".com"
			address := mailbox(sender) + "@" + domain
			return Draft{
				From:    fmt.Sprintf("%s <%s>", sender, address),
				Subject: fmt.Sprintf("Re: Invoice %s - Updated Banking Information", ref),
				Body: fmt.Sprintf(`Hi,

Hope you're doing well. Just wanted to let you know that we've recently changed banks and need to update our payment details on file.

For invoice %[1]s (%[2]s), please use the following new account:

Bank: First Commerce Bank
Account Name: %[3]s Holdings LLC
Account Number: 4821956730
Routing Number: 026009593

Please disregard any previous payment instructions. This will be our account going forward.

Let me know if you need any additional documentation.

Best,
%[4]s
Accounts Receivable Manager
%[3]s
%[5]s`, ref, amount, company, sender, address),
				Domain: domain,
			}
		},
	},
	{
		ID:          "invoice-subscription",
		Category:    CategoryInvoice,
		Difficulty:  DifficultyMedium,
		Explanation: "Subscription renewal scams trick you into \"canceling\" by entering credentials. Check subscriptions through official Microsoft account pages, not email links.",
		RedFlags: []string{
			"Fake Microsoft domain",
			"Auto-renewal scare",
			"Links to external site",
			"No account-specific details",
		},
		Compose: func(f Fields) Draft {
			amount, ref, domain := f.Amount(), f.Reference(), f.Domain(DifficultyMedium)
			return Draft{
				From:    fmt.Sprintf("Microsoft 365 <billing@%s>", domain),
				Subject: fmt.Sprintf("Your Microsoft 365 subscription will renew for %s", amount),
				Body: fmt.Sprintf(`Microsoft

Your Microsoft 365 Business subscription is set to auto-renew.

Renewal Date: %[1]s
Amount: %[2]s
Invoice: %[3]s

This amount will be charged to your payment method on file.

If you did not authorize this renewal, cancel immediately:
https://%[4]s/cancel-subscription

To update payment method or review subscription:
https://%[4]s/manage-subscription

Thank you for being a valued customer.

Microsoft Billing`, f.DaysAhead(3), amount, ref, domain),
				Domain: domain,
			}
		},
	},

	// Package Delivery
	{
		ID:          "delivery-failed",
		Category:    CategoryDelivery,
		Difficulty:  DifficultyEasy,
		Explanation: "Package delivery scams exploit online shopping habits. FedEx uses fedex.com, not variations. The small fee is designed to harvest credit card information.",
		RedFlags: []string{
			"Fake FedEx domain",
			"Small fee request (credit card harvesting)",
			"Generic tracking format",
			"Return to sender threat",
		},
		Compose: func(f Fields) Draft {
			domain, tracking := f.Domain(DifficultyEasy), "1Z"+f.Alnum(8)
			return Draft{
				From:    fmt.Sprintf("FedEx Delivery <notification@%s>", domain),
				Subject: fmt.Sprintf("Delivery Failed: Package %s - Action Required", tracking),
				Body: fmt.Sprintf(`FedEx

DELIVERY ATTEMPTED - ACTION REQUIRED

Tracking Number: %[1]s

We attempted to deliver your package but no one was available. Your package is being held at our facility.

To reschedule delivery, update your address:
https://%[2]s/reschedule/%[1]s

A $1.99 redelivery fee applies.

If not claimed within 5 days, package will be returned to sender.

FedEx Customer Service`, tracking, domain),
				Domain: domain,
			}
		},
	},
	{
		ID:          "delivery-customs",
		Category:    CategoryDelivery,
		Difficulty:  DifficultyMedium,
		Explanation: "Customs clearance scams target international shoppers. DHL and other carriers have official processes for customs, never email payment links.",
		RedFlags: []string{
			"Customs fee request",
			"Fake DHL domain",
			"Payment via email link",
			"Return threat deadline",
		},
		Compose: func(f Fields) Draft {
			domain, tracking := f.Domain(DifficultyMedium), "DHL"+f.Digits(10)
			return Draft{
				From:    fmt.Sprintf("DHL Express <customs@%s>", domain),
				Subject: fmt.Sprintf("Customs Clearance Required - Shipment %s", tracking),
				Body: fmt.Sprintf(`DHL EXPRESS

Your international shipment requires customs clearance.

Tracking: %s
Origin: Shenzhen, China
Status: Held at Customs

Customs duties and taxes due: $47.50

Your package cannot be released until duties are paid. Pay online for immediate release:
https://%s/customs-payment

Payment must be made within 48 hours or package will be returned.

DHL Customs Department`, tracking, domain),
				Domain: domain,
			}
		},
	},
	{
		ID:          "delivery-signature",
		Category:    CategoryDelivery,
		Difficulty:  DifficultyHard,
		Explanation: "This sophisticated attack spoofs USPS Informed Delivery. The URL uses subdomain tricks to look legitimate. USPS never requires \"digital signature authorization.\"",
		RedFlags: []string{
			"Subdomain spoofing (usps.com.fake)",
			"Pre-signature not a real thing",
			"Spoofed sender looks legitimate",
		},
		Compose: func(f Fields) Draft {
			domain, tracking := f.Domain(DifficultyHard), "9400"+f.Digits(13)
			link := "https://" + domain + "/authorize"
			if strings.Contains(domain, ".com.") {
				link = "https://tools.usps.com." + domain + "/authorize"
			}
			return Draft{
				From:    "USPS Informed Delivery <notifications@usps.com>",
				Subject: "Digital signature required for your package",
				Body: fmt.Sprintf(`USPS Informed Delivery®

Package Update for %s

A package requiring signature confirmation is on the way to your address. Due to new security requirements, you must pre-authorize delivery.

Complete digital signature authorization:
%s

This ensures your package is delivered without delays.

Expected Delivery: %s

Thank you for using USPS Informed Delivery.`, tracking, link, f.DaysAhead(2)),
				Domain: domain,
			}
		},
	},

	// Bank Alerts
	{
		ID:          "bank-suspicious",
		Category:    CategoryBank,
		Difficulty:  DifficultyEasy,
		Explanation: "Banks never ask you to block cards via email links. Real fraud alerts direct you to call the number on your card or use the official banking app.",
		RedFlags: []string{
			"Emoji in subject line",
			"Fake bank domain",
			"Scary foreign transaction",
			"Block card via email link",
		},
		Compose: func(f Fields) Draft {
			bank, domain, amount := f.Bank(), f.Domain(DifficultyEasy), f.Amount()
			return Draft{
				From:    fmt.Sprintf("%s Security <alert@%s>", bank, domain),
				Subject: "🚨 ALERT: Suspicious Transaction on Your Account",
				Body: fmt.Sprintf(`%[1]s SECURITY ALERT

We detected a suspicious transaction on your account:

Transaction: Online Purchase
Amount: %[2]s
Merchant: ELECTRONICS STORE MOSCOW RU
Date: %[3]s

If you did NOT authorize this transaction, click below to block your card immediately:
https://%[4]s/block-card

If this was you, no action needed.

%[5]s Fraud Protection Team

This is an automated message. Do not reply.`, strings.ToUpper(bank), amount, f.Today(), domain, bank),
				Domain: domain,
			}
		},
	},
	{
		ID:          "bank-verify",
		Category:    CategoryBank,
		Difficulty:  DifficultyMedium,
		Explanation: "Banks never request sensitive information via email. The \"Member FDIC\" is added to seem legitimate. Always access banking through official apps or typed URLs.",
		RedFlags: []string{
			"Requests SSN",
			"Requests account number",
			"Verify via email link",
			"Deadline pressure",
			"Generic greeting",
		},
		Compose: func(f Fields) Draft {
			bank, domain := f.Bank(), f.Domain(DifficultyMedium)
			return Draft{
				From:    fmt.Sprintf("%s <security@%s>", bank, domain),
				Subject: "Action Required: Verify Your Account Information",
				Body: fmt.Sprintf(`Dear Valued Customer,

As part of our commitment to your security, we periodically verify customer information to prevent unauthorized access.

Your account requires verification to continue uninterrupted service.

Please verify your account within 3 business days:
https://%s/verify-account

Required information:
• Full name and address
• Account number
• SSN (last 4 digits)
• Online banking username

Thank you for your prompt attention.

%s
Member FDIC`, domain, bank),
				Domain: domain,
			}
		},
	},
	{
		ID:          "bank-wire-confirm",
		Category:    CategoryBank,
		Difficulty:  DifficultyHard,
		Explanation: "This sophisticated scam combines a legitimate-looking sender with a subdomain-spoofed cancellation link. The phone number is also fraudulent. Call the number on your card.",
		RedFlags: []string{
			"Subdomain spoofing in cancel URL",
			"Fake phone number",
			"Wire to foreign bank",
			"Domain looks legitimate but is fake",
		},
		Compose: func(f Fields) Draft {
			bank, amount := f.Bank(), f.Amount()
			domain := slug(bank) + ".com.wire-cancel.net"
			return Draft{
				From:    fmt.Sprintf("%s Wire Transfers <wire.transfers@%s.com>", bank, slug(bank)),
				Subject: fmt.Sprintf("Wire Transfer Confirmation Required - %s", amount),
				Body: fmt.Sprintf(`%[1]s
Secure Wire Transfer Service

A wire transfer has been initiated from your account:

Amount: %[2]s
Recipient: NORTHERN TRUST HOLDINGS
Recipient Bank: Banco Nacional, Mexico
Reference: WT%[3]s

This transfer will process in 2 hours.

If you authorized this transfer, no action needed.

If you did NOT authorize this, cancel immediately:
• Call 1-800-555-0149
• Or click: https://%[4]s/stop

%[1]s Wire Transfer Department`, bank, amount, f.Digits(8), domain),
				Domain: domain,
			}
		},
	},

	// HR/Payroll
	{
		ID:          "hr-direct-deposit",
		Category:    CategoryPayroll,
		Difficulty:  DifficultyEasy,
		Explanation: "HR never collects banking information via email links. Payroll changes are made through secure internal HR portals or in-person with HR staff.",
		RedFlags: []string{
			"Requests full SSN",
			"Requests bank details via form",
			"Paper check fee threat",
			"Suspicious domain",
			"Generic \"Human Resources\" signature",
		},
		Compose: func(f Fields) Draft {
			domain := f.Domain(DifficultyEasy)
			return Draft{
				From:    fmt.Sprintf("HR Department <hr@%s>", domain),
				Subject: "ACTION REQUIRED: Update Direct Deposit Information",
				Body: fmt.Sprintf(`Dear Employee,

We are updating our payroll system and need all employees to re-submit their direct deposit information.

Click below to update your information by Friday:
https://%s/payroll-update

Required information:
- Bank name
- Routing number
- Account number
- Social Security Number

Failure to update will result in paper check issuance with a $15 processing fee.

Human Resources`, domain),
				Domain: domain,
			}
		},
	},
	{
		ID:          "hr-bonus",
		Category:    CategoryPayroll,
		Difficulty:  DifficultyMedium,
		Explanation: "Bonus notification scams exploit excitement to bypass caution. Real bonuses appear in your paycheck automatically. Verify with your manager or HR directly.",
		RedFlags: []string{
			"Too good to be true bonus",
			"Requests bank account",
			"External domain",
			"Deadline pressure",
		},
		Compose: func(f Fields) Draft {
			domain, amount := f.Domain(DifficultyMedium), f.Amount()
			return Draft{
				From:    fmt.Sprintf("Payroll Team <payroll@%s>", domain),
				Subject: "Year-End Bonus Confirmation Required",
				Body: fmt.Sprintf(`Dear Team Member,

Congratulations! You've been approved for a year-end performance bonus of %s.

To receive this bonus in your next paycheck, please confirm your details:
https://%s/bonus-confirmation

We need to verify:
• Current mailing address
• Bank account for deposit
• Tax withholding preferences

Please confirm by December 31st to ensure timely processing.

Best regards,
Compensation & Benefits Team`, amount, domain),
				Domain: domain,
			}
		},
	},
	{
		ID:          "hr-policy-update",
		Category:    CategoryPayroll,
		Difficulty:  DifficultyHard,
		Explanation: "Weaponized document attacks hide malware in PDFs. The \"acknowledge\" button may execute malicious code. Verify policy updates through your company intranet.",
		RedFlags: []string{
			"PDF attachment (potential malware)",
			"Acknowledge button in PDF is suspicious",
			"Deadline pressure",
		},
		Compose: func(f Fields) Draft {
			sender := f.SenderName()
			const attachment = "Employee_Handbook_2024_Updated.pdf"
			return Draft{
				From:    fmt.Sprintf("%s <%s@company.com>", sender, mailbox(sender)),
				Subject: "Updated Employee Handbook - Acknowledgment Required",
				Body: fmt.Sprintf(`Hi team,

We've made updates to the Employee Handbook regarding remote work policies, PTO accrual, and expense reimbursement.

Please review and acknowledge the changes by Friday:

📎 %s (2.1 MB)

After reviewing, click "Acknowledge" in the document to confirm you've read and agree to the policies.

Thanks for your attention to this.

%s
HR Business Partner`, attachment, sender),
				Attachment: attachment,
				Domain:     "company.com",
			}
		},
	},
}
