package service

import (
	"fmt"

	"github.com/sentriguide/sentriguide-go/internal/model"
	"github.com/sentriguide/sentriguide-go/internal/textmatch"
	"go.uber.org/zap"
)

// 主要问题分类按首条客户消息匹配，命中即停
var issueCategories = []struct {
	keywords []string
	label    string
}{
	{[]string{"virus", "malware", "infected"}, "Malware/Virus concern"},
	{[]string{"slow", "performance", "speed"}, "Performance issue"},
	{[]string{"email", "spam", "phishing"}, "Email security"},
	{[]string{"update", "install", "download"}, "Software update/installation"},
}

// SummaryService 会话上下文摘要服务
type SummaryService struct {
	logger *zap.Logger
}

// NewSummaryService 创建摘要服务
func NewSummaryService(logger *zap.Logger) *SummaryService {
	return &SummaryService{logger: logger}
}

// Summarize 生成会话摘要文本。
// 消息不足两条时返回 false，面板保持原状。
func (s *SummaryService) Summarize(messages []model.Message) (string, bool) {
	if len(messages) < 2 {
		return "", false
	}

	var firstCustomer, latestCustomer string
	engineerReplies := 0
	for _, m := range messages {
		switch m.Role {
		case model.RoleCustomer:
			if firstCustomer == "" {
				firstCustomer = m.Content
			}
			latestCustomer = m.Content
		case model.RoleEngineer:
			engineerReplies++
		}
	}

	mainIssue := "General inquiry"
	for _, cat := range issueCategories {
		if textmatch.ContainsAny(firstCustomer, cat.keywords) {
			mainIssue = cat.label
			break
		}
	}

	state := "Initial contact phase"
	switch {
	case len(messages) > 6:
		state = "Extended conversation - consider escalation"
	case len(messages) > 3:
		state = "Active troubleshooting"
	}

	style := "Concise"
	if len(firstCustomer) > 100 {
		style = "Detailed"
	}

	concern := textmatch.Truncate(latestCustomer, 100)

	summary := fmt.Sprintf(`📝 CONVERSATION SUMMARY:

🎯 MAIN ISSUE: %s
💬 TOTAL MESSAGES: %d
📊 CURRENT STATE: %s

👤 CUSTOMER PROFILE:
• Communication style: %s
• Latest concern: %s

📈 PROGRESS NOTES:
• Engineer responses provided: %d
• Issue category tracked since first customer message

🔍 CONTEXT NOTES:
Use this summary to keep responses consistent with the conversation so far`,
		mainIssue, len(messages), state, style, concern, engineerReplies)

	s.logger.Info("会话摘要生成完成",
		zap.String("mainIssue", mainIssue),
		zap.Int("messages", len(messages)))

	return summary, true
}
