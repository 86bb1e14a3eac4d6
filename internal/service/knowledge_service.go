package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sentriguide/sentriguide-go/internal/helpcenter"
	"github.com/sentriguide/sentriguide-go/internal/model"
	"github.com/sentriguide/sentriguide-go/internal/textmatch"
	"go.uber.org/zap"
)

// knowledgeBucket 知识路由主题桶。按声明顺序逐个尝试，先命中者胜出。
type knowledgeBucket struct {
	name         string
	terms        []string
	titleFilters []string
	header       string
}

// 主题桶优先级表。resolutionGuard 必须排第一，关单质询优先于一切技术主题。
var knowledgeBuckets = []knowledgeBucket{
	{
		name: "resolutionGuard",
		terms: []string{
			"case closed", "ticket resolved", "issue resolved", "problem solved",
			"case complete", "close ticket", "resolution confirmed", "mark resolved",
			"case closure", "support complete", "issue fixed", "problem fixed",
			"ready to close", "case status", "resolution quality", "customer satisfied",
			"follow up needed", "escalate case", "reopen case",
		},
		titleFilters: []string{"resolution", "case closure", "quality", "confidence"},
		header:       "💡 RESOLUTION GUARD - CASE CLOSURE ANALYSIS",
	},
	{
		name: "accountWebsite",
		terms: []string{
			"account portal", "can't login", "forgot password", "account locked",
			"website down", "portal not working", "account access", "login failed",
			"password reset", "account issues", "portal error", "dashboard not loading",
			"account.trendmicro.com", "my account", "sign in problem",
			"authentication failed", "session expired", "account suspended", "profile issues",
		},
		titleFilters: []string{"account", "portal", "login", "website", "access"},
		header:       "💡 TREND MICRO ACCOUNT PORTAL SOLUTIONS",
	},
	{
		name: "technicalError",
		terms: []string{
			"error", "not working", "won't start", "crashes", "freezes",
			"installation failed", "can't install", "setup error", "connection error",
			"website error", "app error", "loading error", "login error", "sync error",
			"update failed", "scan failed", "won't open", "blank screen", "stuck", "hangs",
		},
		titleFilters: []string{"error", "troubleshooting", "installation", "technical"},
		header:       "💡 TREND MICRO TECHNICAL TROUBLESHOOTING",
	},
	{
		name: "renewal",
		terms: []string{
			"renew", "renewal", "subscription", "activate", "activation",
			"license", "expire", "expiration", "payment", "billing",
		},
		header: "💡 TREND MICRO RENEWAL SOLUTIONS",
	},
	{
		name: "installation",
		terms: []string{
			"install", "installation", "download", "setup",
			"maximum security", "antivirus plus", "internet security",
		},
		header: "💡 TREND MICRO INSTALLATION SOLUTIONS",
	},
	{
		name: "idProtection",
		terms: []string{
			"id protection", "password manager", "password", "import password",
			"identity", "personal data", "privacy", "data breach",
		},
		titleFilters: []string{"password", "privacy", "identity", "data"},
		header:       "💡 TREND MICRO ID PROTECTION SOLUTIONS",
	},
	{
		name: "webProtection",
		terms: []string{
			"vpn", "web protection", "safe browsing", "website",
			"phishing", "block site", "parental control",
		},
		titleFilters: []string{"web", "firewall", "protection", "parental"},
		header:       "💡 TREND MICRO WEB PROTECTION SOLUTIONS",
	},
	{
		name: "billing",
		terms: []string{
			"cashback", "refund", "billing", "payment", "charge",
			"cancel subscription", "money back", "claim cashback", "return", "invoice",
		},
		titleFilters: []string{"billing", "refund", "cashback", "payment", "cancel"},
		header:       "💡 TREND MICRO BILLING & REFUND SOLUTIONS",
	},
}

// 泛化检索关键词，未命中任何主题桶时用于提取查询词
var searchKeywords = []string{
	"antivirus", "security", "malware", "threat", "protection", "scan",
	"update", "firewall", "email", "endpoint", "renew", "renewal",
	"subscription", "activate", "activation", "license", "expire",
	"expiration", "payment", "billing",
}

// 通用结果的步骤模板，按文章标题分类选取
var defaultBulletsByClass = []struct {
	keywords []string
	bullets  []string
}{
	{[]string{"renew"}, []string{
		"Visit the Trend Micro customer portal and log into your account",
		"Navigate to 'My Account' and select 'Subscriptions'",
		"Click 'Renew' next to your expiring product",
		"Choose renewal period and complete payment",
		"Download and enter new activation code in your product",
	}},
	{[]string{"install", "activation"}, []string{
		"Download the installer from the official Trend Micro download center",
		"Close other security software before running the installer",
		"Run the installer and follow the on-screen prompts",
		"Enter your activation code when requested",
		"Restart the computer and confirm protection is active",
	}},
	{[]string{"troubleshoot", "problem"}, []string{
		"Restart the Trend Micro program and try the operation again",
		"Check for pending program updates and apply them",
		"Review recent error messages in the program logs",
		"Temporarily disable conflicting software and retest",
		"Contact support with the diagnostic report if the issue persists",
	}},
	{[]string{"quarantine"}, []string{
		"Open the Trend Micro console and go to the quarantine section",
		"Review each quarantined item and its detection name",
		"Restore items only if you are certain they are safe",
		"Delete confirmed threats permanently",
		"Run a follow-up full scan to verify the system is clean",
	}},
	{[]string{"protection", "real-time"}, []string{
		"Open the main console and check the protection status indicator",
		"Ensure real-time scanning is switched on",
		"Update the security components to the latest version",
		"Review protection settings for web, email, and folder shield",
		"Run a quick scan to confirm everything is working",
	}},
}

var genericBullets = []string{
	"Open your Trend Micro security program",
	"Check that your subscription is active and up to date",
	"Run the recommended scan or tool for your issue",
	"Apply any suggested fixes from the scan results",
	"Contact Trend Micro support if the issue continues",
}

// 消息关键词对应的快捷操作提示
var quickActions = []struct {
	keywords []string
	action   string
}{
	{[]string{"virus", "malware", "infected"}, "⚡ Quick: Run full scan, check quarantine"},
	{[]string{"slow", "performance"}, "⚡ Quick: Check resources, optimize settings"},
	{[]string{"email", "spam"}, "⚡ Quick: Configure email security"},
}

// KnowledgeService 知识检索与路由服务。
// 主题桶命中时直接用内置目录渲染，未命中时抓取帮助中心。
type KnowledgeService struct {
	client *helpcenter.Client
	logger *zap.Logger
}

// NewKnowledgeService 创建知识检索服务
func NewKnowledgeService(client *helpcenter.Client, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{client: client, logger: logger}
}

// Lookup 按客户消息路由知识主题并渲染解决方案面板
func (s *KnowledgeService) Lookup(customerMsg string) model.KnowledgeResult {
	for _, bucket := range knowledgeBuckets {
		matched := textmatch.FindAll(customerMsg, bucket.terms)
		if len(matched) == 0 {
			continue
		}

		query := deriveQuery(matched)
		s.logger.Info("知识路由命中主题桶",
			zap.String("bucket", bucket.name),
			zap.String("query", query))

		switch bucket.name {
		case "renewal":
			return s.spotlightResult(query, bucket.header, customerMsg, "renew")
		case "installation":
			return s.spotlightResult(query, bucket.header, customerMsg, "install")
		default:
			return s.themedResult(query, bucket, customerMsg)
		}
	}

	query := deriveQuery(textmatch.FindAll(customerMsg, searchKeywords))
	s.logger.Info("知识路由走通用检索", zap.String("query", query))
	return s.genericResult(query, customerMsg)
}

// deriveQuery 取命中词表中最靠前的两个词拼为查询串
func deriveQuery(matched []string) string {
	if len(matched) == 0 {
		return "security"
	}
	if len(matched) > 2 {
		matched = matched[:2]
	}
	return strings.Join(matched, " ")
}

func issueLine(header, customerMsg string) string {
	return fmt.Sprintf("%s\nIssue: %s...\n\n", header, textmatch.Truncate(customerMsg, 80))
}

// themedResult 按标题过滤词从内置目录挑主题文章，渲染前三条
func (s *KnowledgeService) themedResult(query string, bucket knowledgeBucket, customerMsg string) model.KnowledgeResult {
	var articles []model.Article
	for _, a := range helpcenter.FallbackArticles() {
		title := strings.ToLower(a.Title)
		for _, f := range bucket.titleFilters {
			if strings.Contains(title, f) {
				articles = append(articles, a)
				break
			}
		}
		if len(articles) == 3 {
			break
		}
	}

	var b strings.Builder
	b.WriteString(issueLine(bucket.header, customerMsg))
	for i, a := range articles {
		fmt.Fprintf(&b, "📋 %d. %s\n%s\n\n", i+1, a.Title, a.Snippet)
	}

	return model.KnowledgeResult{Query: query, Articles: articles, Rendered: b.String()}
}

// spotlightResult 续费/安装主题：标题含关键词的文章给全文，另附两条简要参考
func (s *KnowledgeService) spotlightResult(query, header, customerMsg, titleKeyword string) model.KnowledgeResult {
	catalog := helpcenter.FallbackArticles()

	var articles []model.Article
	var b strings.Builder
	b.WriteString(issueLine(header, customerMsg))

	idx := 1
	for _, a := range catalog {
		if strings.Contains(strings.ToLower(a.Title), titleKeyword) {
			fmt.Fprintf(&b, "📋 %d. %s\n%s\n\n", idx, a.Title, a.Snippet)
			articles = append(articles, a)
			idx++
			break
		}
	}

	extras := 0
	for _, a := range catalog[:min(3, len(catalog))] {
		if extras == 2 {
			break
		}
		if len(articles) > 0 && a.Title == articles[0].Title {
			continue
		}
		snippet := textmatch.Truncate(a.Snippet, 100)
		fmt.Fprintf(&b, "📋 %d. %s\n%s...\n🔗 %s\n\n", idx, a.Title, snippet, a.Link)
		articles = append(articles, a)
		idx++
		extras++
	}

	return model.KnowledgeResult{Query: query, Articles: articles, Rendered: b.String()}
}

// genericResult 抓取帮助中心文章并配默认步骤与快捷操作
func (s *KnowledgeService) genericResult(query, customerMsg string) model.KnowledgeResult {
	articles := s.client.FetchArticles(query)
	if len(articles) == 0 {
		return model.KnowledgeResult{Query: query, Rendered: generalSolutions(customerMsg)}
	}
	if len(articles) > 3 {
		articles = articles[:3]
	}

	var b strings.Builder
	b.WriteString(issueLine("💡 TREND MICRO SOLUTIONS", customerMsg))
	for i, a := range articles {
		fmt.Fprintf(&b, "📋 %d. %s\n", i+1, a.Title)
		for _, bullet := range bulletsForTitle(a.Title) {
			fmt.Fprintf(&b, "• %s\n", bullet)
		}
		fmt.Fprintf(&b, "🔗 %s\n\n", a.Link)
	}

	for _, qa := range quickActions {
		if textmatch.ContainsAny(customerMsg, qa.keywords) {
			b.WriteString(qa.action + "\n")
			break
		}
	}

	return model.KnowledgeResult{Query: query, Articles: articles, Rendered: b.String()}
}

func bulletsForTitle(title string) []string {
	lower := strings.ToLower(title)
	for _, class := range defaultBulletsByClass {
		for _, kw := range class.keywords {
			if strings.Contains(lower, kw) {
				return class.bullets
			}
		}
	}
	return genericBullets
}

func generalSolutions(customerMsg string) string {
	return issueLine("📚 GENERAL TREND MICRO SOLUTIONS", customerMsg) + `🛡️ SECURITY BEST PRACTICES:
• Keep your security software and operating system updated
• Run regular full system scans
• Avoid opening attachments from unknown senders
• Use strong, unique passwords for each account
• Back up important files regularly

🔧 BASIC TROUBLESHOOTING:
• Restart the security program
• Check your internet connection
• Verify your subscription is active
• Reinstall the product if problems persist
• Contact Trend Micro support for further help
`
}

// BuildHistoryEntry 根据本轮检索结果生成解决方案历史条目
func (s *KnowledgeService) BuildHistoryEntry(customerMsg string, result model.KnowledgeResult) model.SolutionHistoryEntry {
	query := customerMsg
	if short := textmatch.Truncate(query, 100); short != query {
		query = short + "..."
	}

	return model.SolutionHistoryEntry{
		Timestamp:       time.Now(),
		CustomerQuery:   query,
		SolutionType:    solutionType(customerMsg, result.Rendered),
		SolutionSummary: solutionSummary(customerMsg, result.Rendered),
		FullSolution:    result.Rendered,
	}
}

func solutionType(customerMsg, rendered string) string {
	lower := strings.ToLower(customerMsg)
	switch {
	case strings.Contains(rendered, "RENEWAL SOLUTIONS"):
		return "🔄 Renewal Guide"
	case strings.Contains(rendered, "INSTALLATION SOLUTIONS"):
		return "💻 Installation Guide"
	case strings.Contains(lower, "virus") || strings.Contains(lower, "malware"):
		return "🛡️ Security Issue"
	case strings.Contains(lower, "scan"):
		return "🔍 Scanning Help"
	case strings.Contains(lower, "performance") || strings.Contains(lower, "slow"):
		return "⚡ Performance Issue"
	default:
		return "📋 General Support"
	}
}

func solutionSummary(customerMsg, rendered string) string {
	lower := strings.ToLower(customerMsg)
	switch {
	case strings.Contains(rendered, "RENEWAL SOLUTIONS"):
		if strings.Contains(rendered, "METHOD 1: Using Activation Code") {
			return "Activation code renewal + online portal method with troubleshooting"
		}
		return "Account portal renewal with step-by-step activation process"
	case strings.Contains(rendered, "INSTALLATION SOLUTIONS"):
		if strings.Contains(rendered, "DOWNLOAD THE INSTALLER") {
			return "Complete download → install → activate → verify process with troubleshooting"
		}
		return "Full installation guide with system requirements and activation"
	case strings.Contains(lower, "virus") || strings.Contains(lower, "malware"):
		return "Malware removal steps, full scan procedures, and quarantine management"
	case strings.Contains(lower, "scan"):
		return "Scanning configuration, scheduled scans, and scan result interpretation"
	case strings.Contains(lower, "performance") || strings.Contains(lower, "slow"):
		return "Performance optimization settings and system resource management"
	}

	// 从渲染文本里捞第一条实际步骤作摘要
	for _, line := range strings.Split(rendered, "\n") {
		line = strings.TrimSpace(line)
		if (strings.HasPrefix(line, "•") || strings.HasPrefix(line, "1.")) && len(line) > 20 {
			if short := textmatch.Truncate(line, 70); short != line {
				line = short + "..."
			}
			return line
		}
	}
	return "Trend Micro help center solutions and troubleshooting guidance"
}
