package helpcenter

import "github.com/sentriguide/sentriguide-go/internal/model"

// FallbackArticles 返回内置的帮助中心文章目录。
// 抓取失败时的兜底数据源；知识路由按标题子串筛选主题文章，标题不可改动。
func FallbackArticles() []model.Article {
	return fallbackCatalog
}

var fallbackCatalog = []model.Article{
	{
		Title: "How to Renew Your Trend Micro Product",
		Link:  "https://helpcenter.trendmicro.com/en-us/how-to-renew/",
		Snippet: `DETAILED RENEWAL GUIDE FOR CUSTOMERS:

PREPARATION (Share with Customer):
• Have your activation code ready
• Ensure stable internet connection
• Have payment method available
• Know your Trend Micro account credentials

METHOD 1: Using Activation Code
1. Open your Trend Micro product
2. Look for "Renew" or "Enter Activation Code" option
3. Enter your activation code in the designated field
4. Click "Submit" or "Activate"
5. Follow on-screen instructions to complete renewal
6. Confirm subscription details and proceed to payment
7. Wait for confirmation email

METHOD 2: Through Trend Micro Account Portal
1. Visit https://account.trendmicro.com
2. Sign in with your account credentials
3. Navigate to "Licenses" or "Subscriptions" tab
4. Locate the subscription you want to renew
5. Click "Renew Now" button
6. If you see "Manage Subscription", auto-renewal is already enabled
7. Follow the secure checkout process
8. Complete payment and save confirmation

SPECIAL SCENARIOS:
• Best Buy purchases: Direct customer to call 1-888-237-8289
• ISP bundled subscriptions: Contact internet service provider
• Corporate licenses: Refer to IT administrator

TROUBLESHOOTING STEPS:
• Error messages during renewal: Clear browser cache, try different browser
• Payment issues: Verify card details, try alternative payment method
• Activation code problems: Check for typos, ensure code hasn't expired
• Account access issues: Use password reset option
• Still having issues: Escalate to Trend Micro Support Team

POST-RENEWAL VERIFICATION:
1. Check that subscription shows as "Active" in account portal
2. Verify new expiration date
3. Ensure real-time protection is running
4. Save renewal confirmation for records`,
	},
	{
		Title: "Installing and Activating Trend Micro Products",
		Link:  "https://helpcenter.trendmicro.com/en-us/installation/",
		Snippet: `COMPREHENSIVE INSTALLATION GUIDE FOR CUSTOMERS:

PRE-INSTALLATION REQUIREMENTS:
• Windows 10/11 (32-bit or 64-bit) or macOS 10.15+
• Minimum 1.5 GB free disk space
• Stable internet connection for download and activation
• Administrator privileges on the computer
• Valid Trend Micro license or activation code

STEP-BY-STEP INSTALLATION PROCESS:

1. DOWNLOAD THE INSTALLER:
   • Visit https://account.trendmicro.com
   • Sign in with your Trend Micro account credentials
   • Navigate to the "Downloads" tab
   • Select "Maximum Security" or your product
   • Click "Download to this Device"

2. RUN THE INSTALLATION:
   • Right-click the downloaded installer file
   • Select "Run as Administrator" (Windows) or double-click (Mac)
   • Follow the installation wizard prompts
   • Accept the license agreement

3. PRODUCT ACTIVATION:
   • Enter your activation code when prompted
   • Or sign in with your Trend Micro account
   • Wait for online activation to complete
   • Restart computer if prompted

POST-INSTALLATION VERIFICATION:
   • Check that Trend Micro icon appears in system tray
   • Verify "Protection Status: Secured" in main interface
   • Run initial system scan to ensure everything works

COMMON INSTALLATION ISSUES & SOLUTIONS:
   • "Installation failed" error: Uninstall competing antivirus first
   • "Activation failed" error: Check internet connection, verify code
   • "Insufficient space" error: Free up disk space, clear temp files
   • Permission errors: Ensure running installer as Administrator`,
	},
	{
		Title:   "Troubleshooting Common Issues",
		Link:    "https://helpcenter.trendmicro.com/en-us/troubleshooting/",
		Snippet: "Solutions for common problems including installation errors, scanning issues, and performance problems.",
	},
	{
		Title:   "Configuring Real-time Protection",
		Link:    "https://helpcenter.trendmicro.com/en-us/protection-settings/",
		Snippet: "Learn how to configure and optimize real-time protection settings for maximum security.",
	},
	{
		Title:   "Managing Quarantined Files",
		Link:    "https://helpcenter.trendmicro.com/en-us/quarantine/",
		Snippet: "How to review, restore, or permanently delete files in quarantine to manage detected threats.",
	},
	{
		Title:   "Email Security Configuration",
		Link:    "https://helpcenter.trendmicro.com/en-us/email-security/",
		Snippet: "Configure email protection settings to block spam, phishing, and malicious attachments.",
	},
	{
		Title:   "Web Protection and Browsing Safety",
		Link:    "https://helpcenter.trendmicro.com/en-us/web-protection/",
		Snippet: "Enable web filtering and safe browsing features to protect against malicious websites.",
	},
	{
		Title:   "Firewall Settings and Network Protection",
		Link:    "https://helpcenter.trendmicro.com/en-us/firewall/",
		Snippet: "Configure firewall rules and network protection to secure your internet connection.",
	},
	{
		Title:   "Performance Optimization Tips",
		Link:    "https://helpcenter.trendmicro.com/en-us/performance/",
		Snippet: "Optimize Trend Micro settings to minimize system impact while maintaining security.",
	},
	{
		Title:   "Virus and Malware Removal Guide",
		Link:    "https://helpcenter.trendmicro.com/en-us/malware-removal/",
		Snippet: "Step-by-step instructions for removing detected threats and cleaning infected systems.",
	},
	{
		Title:   "Scheduled Scan Configuration",
		Link:    "https://helpcenter.trendmicro.com/en-us/scheduled-scans/",
		Snippet: "Set up automated scans to regularly check your system for threats and vulnerabilities.",
	},
	{
		Title:   "Mobile Device Protection Setup",
		Link:    "https://helpcenter.trendmicro.com/en-us/mobile-security/",
		Snippet: "Protect your mobile devices with Trend Micro Mobile Security features and settings.",
	},
	{
		Title:   "Password Manager Configuration",
		Link:    "https://helpcenter.trendmicro.com/en-us/password-manager/",
		Snippet: "Set up and use the built-in password manager to secure your online accounts.",
	},
	{
		Title:   "Privacy and Data Protection",
		Link:    "https://helpcenter.trendmicro.com/en-us/privacy-protection/",
		Snippet: "Configure privacy settings and data protection features to safeguard personal information.",
	},
	{
		Title:   "Parental Controls Setup",
		Link:    "https://helpcenter.trendmicro.com/en-us/parental-controls/",
		Snippet: "Configure parental controls to protect children online and manage screen time.",
	},
	{
		Title:   "Backup and Restore Settings",
		Link:    "https://helpcenter.trendmicro.com/en-us/backup-restore/",
		Snippet: "Backup your Trend Micro settings and restore configurations after reinstallation.",
	},
	{
		Title:   "Enterprise and Business Solutions",
		Link:    "https://helpcenter.trendmicro.com/en-us/business/",
		Snippet: "Deployment and management guides for Trend Micro business and enterprise products.",
	},
	{
		Title:   "Technical Support Resources",
		Link:    "https://helpcenter.trendmicro.com/en-us/support/",
		Snippet: "Access diagnostic tools, log collection, and contact information for technical support.",
	},
	{
		Title:   "License Management and Transfer",
		Link:    "https://helpcenter.trendmicro.com/en-us/license-management/",
		Snippet: "Manage your licenses, transfer them between devices, and resolve activation issues.",
	},
	{
		Title:   "Cloud Security Best Practices",
		Link:    "https://helpcenter.trendmicro.com/en-us/cloud-security/",
		Snippet: "Secure cloud services and protect data stored in cloud environments with Trend Micro.",
	},
	{
		Title: "Password Manager Setup and Import Guide",
		Link:  "https://helpcenter.trendmicro.com/en-us/password-manager/",
		Snippet: `COMPREHENSIVE PASSWORD MANAGER GUIDE:

SETTING UP PASSWORD MANAGER:
• Open Trend Micro Maximum Security or ID Protection
• Navigate to "Password Manager" section
• Create a master password (remember this - it cannot be recovered!)
• Enable browser extension when prompted

IMPORTING PASSWORDS FROM OTHER MANAGERS:
1. FROM CHROME/EDGE BROWSER:
   • Open Password Manager → Settings → Import
   • Choose Chrome/Edge from dropdown, click "Import Now"
2. FROM OTHER PASSWORD MANAGERS:
   • Export passwords from old manager as CSV file
   • In Trend Micro: Settings → Import → "CSV File"
   • Map fields if needed and click "Import"
3. MANUAL ENTRY:
   • Click "Add New", enter website URL, username, password

SECURITY FEATURES:
• Password Generator, Auto-Fill, Secure Notes
• Security Audit: Check for weak/reused passwords
• Dark Web Monitoring: Alert if passwords are compromised

TROUBLESHOOTING COMMON ISSUES:
• Import failed: Check CSV format, ensure no special characters
• Auto-fill not working: Enable browser extension, check permissions
• Forgot master password: Cannot be recovered - will need to reset`,
	},
	{
		Title: "ID Protection and Privacy Setup",
		Link:  "https://helpcenter.trendmicro.com/en-us/id-protection/",
		Snippet: `COMPLETE ID PROTECTION SETUP GUIDE:

IDENTITY PROTECTION FEATURES:
• Social Security Number monitoring
• Credit report monitoring
• Dark web monitoring for personal data
• Identity theft insurance coverage
• Identity restoration services

INITIAL SETUP PROCESS:
1. Open Trend Micro ID Protection
2. Complete identity verification with SSN and personal details
3. Connect bank accounts and credit cards for monitoring
4. Set up alerts for suspicious activity
5. Enable dark web monitoring

IDENTITY THEFT RESPONSE:
• Immediate notification of suspicious activity
• Access to identity restoration specialists
• Help with freezing credit reports

PRIVACY TOOLS:
• Personal Data Removal: Remove info from data broker sites
• Email Monitoring: Track if email appears in breaches
• Phone Number Protection: Monitor for unauthorized use`,
	},
	{
		Title: "VPN and Secure Connection Setup",
		Link:  "https://helpcenter.trendmicro.com/en-us/vpn/",
		Snippet: `TREND MICRO VPN SETUP AND USAGE:

VPN BENEFITS:
• Hide your IP address and location
• Encrypt internet traffic on public Wi-Fi
• Protect against online tracking

VPN SETUP PROCESS:
1. Open Trend Micro Maximum Security
2. Navigate to "Privacy" or "VPN" section
3. Click "Enable VPN" or "Get Started"
4. Choose server location (or use "Auto-Select")
5. Click "Connect" to establish secure connection
6. Verify connection with green "Connected" status

TROUBLESHOOTING VPN ISSUES:
• Connection fails: Try different server location
• Slow speeds: Use Auto-Select or nearest server
• Mobile VPN not working: Check app permissions

OPTIMAL USAGE TIPS:
• Use VPN on public Wi-Fi networks always
• Choose nearest server location for best speed
• Enable "Auto-Connect" for automatic protection`,
	},
	{
		Title: "Email Security and Anti-Spam Configuration",
		Link:  "https://helpcenter.trendmicro.com/en-us/email-security/",
		Snippet: `EMAIL SECURITY COMPREHENSIVE SETUP:

EMAIL PROTECTION FEATURES:
• Spam filtering and blocking
• Phishing email detection
• Malicious attachment scanning
• Link protection and URL filtering

OUTLOOK INTEGRATION SETUP:
1. Install Trend Micro Maximum Security
2. Open Outlook → File → Options → Add-ins
3. Verify "Trend Micro Email Security" is enabled
4. Set spam sensitivity level (Low/Medium/High)
5. Enable real-time email scanning

ANTI-SPAM CONFIGURATION:
• Whitelist: Add trusted senders to never block
• Blacklist: Block specific domains or email addresses
• Quarantine: Review blocked emails before deletion

TROUBLESHOOTING EMAIL ISSUES:
• Legitimate emails in spam: Add sender to whitelist
• Missing email toolbar: Enable Trend Micro add-in in Outlook
• False phishing warnings: Report false positive to support`,
	},
	{
		Title: "Parental Controls and Family Protection",
		Link:  "https://helpcenter.trendmicro.com/en-us/parental-controls/",
		Snippet: `COMPREHENSIVE PARENTAL CONTROLS SETUP:

FAMILY PROTECTION FEATURES:
• Content filtering by age-appropriate categories
• Screen time management and schedules
• App usage monitoring and restrictions
• Location tracking and geofencing alerts

INITIAL SETUP PROCESS:
1. Open Trend Micro Family → Create family account
2. Add child profiles with names and ages
3. Install Trend Micro Mobile Security on child devices
4. Configure content filtering levels by age group
5. Set screen time limits and schedules

SCREEN TIME MANAGEMENT:
• Daily time limits for device usage
• Scheduled "bedtime" hours with device lockdown
• Homework mode: Block entertainment apps during study time`,
	},
	{
		Title: "Cashback Claims and Refund Requests",
		Link:  "https://helpcenter.trendmicro.com/en-us/billing-refunds/",
		Snippet: `COMPREHENSIVE BILLING AND REFUND GUIDE:

CASHBACK CLAIM PROCESS:
• Cashback offers are typically promotional and time-limited
• Check original purchase email or promotional materials for cashback terms
• Submit cashback claim within specified timeframe (usually 30-90 days)
• Provide proof of purchase (receipt, order confirmation)

REFUND REQUEST PROCESS:
1. DIRECT TREND MICRO PURCHASES:
   • Visit https://account.trendmicro.com
   • Navigate to "Orders" or "Billing History"
   • Select the order and click "Request Refund"
   • Refunds typically processed within 5-7 business days
2. THIRD-PARTY PURCHASES:
   • Contact the retailer directly (Best Buy, Amazon, etc.)
   • Retailer refund policies apply

REFUND ELIGIBILITY:
• 30-day money-back guarantee on most consumer products
• Auto-renewal charges refundable within 30 days of billing`,
	},
	{
		Title: "Billing Account Management and Payment Issues",
		Link:  "https://helpcenter.trendmicro.com/en-us/billing-management/",
		Snippet: `COMPLETE BILLING ACCOUNT MANAGEMENT:

PAYMENT METHOD MANAGEMENT:
• Update credit card information before expiration
• Add backup payment methods for auto-renewal
• Remove old or expired payment methods
• Configure billing address and tax information

SUBSCRIPTION MANAGEMENT:
• View current subscription status and expiration
• Manage auto-renewal settings (enable/disable)
• Upgrade or downgrade subscription plans

COMMON PAYMENT ISSUES:
• Payment declined: Verify card details and available funds
• Duplicate charges: Contact billing support with order numbers
• Currency issues: Confirm billing region matches account region`,
	},
	{
		Title: "Subscription Cancellation and Service Management",
		Link:  "https://helpcenter.trendmicro.com/en-us/cancel-subscription/",
		Snippet: `SUBSCRIPTION CANCELLATION COMPREHENSIVE GUIDE:

CANCELLATION PROCESS:
1. Sign in to https://account.trendmicro.com
2. Navigate to "Subscriptions" or "My Products"
3. Find active subscription to cancel
4. Click "Manage Subscription" or "Cancel"
5. Select cancellation reason (required)
6. Confirm cancellation and save changes
7. Receive cancellation confirmation email

CANCELLATION TIMING:
• Cancel anytime during subscription period
• Service continues until current period expires
• No prorated refunds for partial months (check specific terms)
• Auto-renewal stops immediately upon cancellation`,
	},
	{
		Title: "Installation Error Troubleshooting Guide",
		Link:  "https://helpcenter.trendmicro.com/en-us/installation-errors/",
		Snippet: `COMPREHENSIVE INSTALLATION ERROR SOLUTIONS:

ERROR: "Installation Failed" or "Setup Error"
• Close all running programs and antivirus software
• Run installer as Administrator (right-click → "Run as administrator")
• Temporarily disable Windows Defender Real-time protection
• Clear Windows temp files: %temp% and delete all contents
• Download fresh installer from account portal
• Restart computer and try installation again

ERROR: "Another version already installed"
• Uninstall previous Trend Micro products completely
• Use Trend Micro Diagnostic Toolkit to remove remnants
• Restart before attempting fresh installation

ERROR: "Insufficient disk space"
• Free at least 1.5 GB on the system drive
• Clear temp files and browser caches`,
	},
	{
		Title: "Application Error and Crash Troubleshooting",
		Link:  "https://helpcenter.trendmicro.com/en-us/app-errors/",
		Snippet: `COMPLETE APPLICATION ERROR RESOLUTION:

ERROR: "Application has stopped working" or Sudden Crashes
• Update Trend Micro to latest version
• Restart Trend Micro services: Services.msc → Trend Micro services → Restart
• Check for corrupted system files: sfc /scannow
• Disable conflicting software (other security tools)
• Reset Trend Micro settings to default

ERROR: Application Won't Start or "Failed to launch"
• Check if Trend Micro services are running
• Verify product license is active and not expired
• Reinstall the product if services are missing

ERROR: Freezes or "Not Responding"
• Allow scans to finish before opening the console
• Check system resources in Task Manager`,
	},
	{
		Title: "Website and Connectivity Technical Issues",
		Link:  "https://helpcenter.trendmicro.com/en-us/connectivity-issues/",
		Snippet: `WEBSITE AND CONNECTIVITY TROUBLESHOOTING:

ERROR: "Cannot access account.trendmicro.com"
• Clear browser cache and cookies completely
• Try different browser (Chrome, Firefox, Edge)
• Disable browser extensions temporarily
• Check if corporate firewall is blocking access
• Try accessing from different network (mobile hotspot)

ERROR: "Page won't load" or "Connection timeout"
• Check internet connection with other websites
• Flush DNS cache: ipconfig /flushdns (Windows)
• Restart router and modem

ERROR: "Update failed" or "Cannot connect to update server"
• Verify system date and time are correct
• Allow Trend Micro through the firewall
• Retry after a few minutes (server load)`,
	},
	{
		Title: "Account Portal Access and Login Issues",
		Link:  "https://helpcenter.trendmicro.com/en-us/account-access/",
		Snippet: `COMPREHENSIVE ACCOUNT PORTAL TROUBLESHOOTING:

ERROR: "Invalid username or password" or Login Failed
• Verify email address spelling and format
• Check password for correct case sensitivity
• Ensure Caps Lock is OFF and correct keyboard layout
• Try typing password manually (don't copy/paste)
• Use password reset if multiple attempts fail

ERROR: "Account locked" or "Too many failed attempts"
• Wait 30 minutes before attempting login again
• Use "Forgot Password" to reset and unlock account

ERROR: "Session expired" or Repeated sign-outs
• Enable cookies for account.trendmicro.com
• Avoid signing in from multiple devices simultaneously

PASSWORD RESET PROCESS:
1. Click "Forgot Password" on the sign-in page
2. Enter the account email address
3. Follow the reset link sent by email (check spam folder)`,
	},
	{
		Title: "Account Management and Profile Issues",
		Link:  "https://helpcenter.trendmicro.com/en-us/account-management/",
		Snippet: `COMPLETE ACCOUNT MANAGEMENT TROUBLESHOOTING:

ERROR: "Cannot update profile" or Profile changes not saving
• Clear browser cache and cookies completely
• Try updating one field at a time instead of all at once
• Ensure all required fields are filled out correctly
• Use different browser or incognito mode

ERROR: "Invalid email format" or Email update issues
• Verify new email address is spelled correctly
• Confirm the change from the verification email

DEVICE MANAGEMENT:
• Remove old devices to free license seats
• Rename devices for easier identification
• Transfer licenses between devices in the portal`,
	},
	{
		Title: "Resolution Guard - Case Closure Quality Control",
		Link:  "https://helpcenter.trendmicro.com/en-us/resolution-guard/",
		Snippet: `COMPREHENSIVE RESOLUTION GUARD FRAMEWORK:

CASE CLOSURE READINESS ASSESSMENT:

RESOLUTION CONFIDENCE SCORING (0-100):
• 90-100: HIGH CONFIDENCE - Safe to close
  - Customer explicitly confirms satisfaction
  - All requested actions completed successfully
  - No follow-up questions or concerns raised
• 70-89: MEDIUM CONFIDENCE - Requires verification
  - Solution provided but no clear confirmation from customer
  - Consider proactive follow-up before closure
• 0-69: LOW CONFIDENCE - DO NOT CLOSE
  - Customer has not confirmed resolution
  - Additional questions or concerns raised
  - Customer expressed confusion or frustration

CLOSURE CHECKLIST:
• Root cause identified and addressed
• Customer confirmed solution works
• No outstanding follow-up items
• Satisfaction indicators positive`,
	},
	{
		Title: "Case Closure Confidence Analysis",
		Link:  "https://helpcenter.trendmicro.com/en-us/case-closure-confidence/",
		Snippet: `ADVANCED CASE CLOSURE CONFIDENCE ASSESSMENT:

CONVERSATION ANALYSIS FACTORS:
• Customer language sentiment and tone progression
• Frequency and nature of follow-up questions
• Explicit confirmation vs. implicit acceptance

HIGH CONFIDENCE INDICATORS (Score: 85-100):
• "Perfect! That solved everything."
• "It's working exactly as expected now."
• Customer provides detailed confirmation of successful testing

MEDIUM CONFIDENCE INDICATORS (Score: 60-84):
• "Okay, I'll try that."
• "I think that fixed it."
• Brief acknowledgment without detailed confirmation

LOW CONFIDENCE INDICATORS (Score: 0-59):
• "It's still not working."
• New or repeated questions about the same issue
• Customer expresses doubt or frustration`,
	},
}
