package service

import (
	"fmt"
	"strings"

	"github.com/sentriguide/sentriguide-go/internal/model"
	"github.com/sentriguide/sentriguide-go/internal/textmatch"
	"go.uber.org/zap"
)

// 客户确认问题已解决的短语，每命中一条加分
var confirmationPhrases = []string{
	"fixed", "resolved", "working now", "thank you", "that worked", "solved", "perfect",
}

// ConfidenceService 解决置信度评估服务。
// 只看最近两条客户消息打分，避免早期的负面情绪压低已解决会话的置信度。
type ConfidenceService struct {
	logger *zap.Logger
}

// NewConfidenceService 创建置信度评估服务
func NewConfidenceService(logger *zap.Logger) *ConfidenceService {
	return &ConfidenceService{logger: logger}
}

// Analyze 评估当前会话的解决置信度，输出四档状态与面板文本
func (s *ConfidenceService) Analyze(messages []model.Message) model.ResolutionState {
	recent := lastCustomerMessages(messages, 2)

	score := 50
	var riskFactors []string

	for _, msg := range recent {
		satisfiedHits, _ := textmatch.Match(msg.Content, satisfiedPatterns)
		score += 8 * len(satisfiedHits)

		frustratedHits, _ := textmatch.Match(msg.Content, frustratedPatterns)
		score -= 8 * len(frustratedHits)
		riskFactors = append(riskFactors, frustratedHits...)

		confusedHits, _ := textmatch.Match(msg.Content, confusedPatterns)
		score -= 5 * len(confusedHits)
		riskFactors = append(riskFactors, confusedHits...)

		worriedHits, _ := textmatch.Match(msg.Content, worriedPatterns)
		score -= 5 * len(worriedHits)
		riskFactors = append(riskFactors, worriedHits...)

		score += 10 * textmatch.CountMatches(msg.Content, confirmationPhrases)

		// 未消解的疑问压低置信度
		trimmed := strings.TrimSpace(msg.Content)
		if strings.HasSuffix(trimmed, "?") || textmatch.ContainsAny(msg.Content, []string{"what if", "still"}) {
			score -= 10
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	status := statusForScore(score)

	s.logger.Info("置信度评估完成",
		zap.Int("score", score),
		zap.String("status", string(status)))

	return model.ResolutionState{
		Score:    score,
		Status:   status,
		Analysis: renderConfidencePanel(score, status, riskFactors),
	}
}

func statusForScore(score int) model.ResolutionStatus {
	switch {
	case score >= 90:
		return model.StatusResolved
	case score >= 70:
		return model.StatusPartiallyResolved
	case score >= 50:
		return model.StatusNeedsFollowUp
	default:
		return model.StatusNotResolved
	}
}

func lastCustomerMessages(messages []model.Message, n int) []model.Message {
	var customer []model.Message
	for _, m := range messages {
		if m.Role == model.RoleCustomer {
			customer = append(customer, m)
		}
	}
	if len(customer) > n {
		customer = customer[len(customer)-n:]
	}
	return customer
}

var statusRecommendations = map[model.ResolutionStatus]string{
	model.StatusResolved:          "Confirm resolution with customer, then proceed to case closure",
	model.StatusPartiallyResolved: "Verify remaining concerns before suggesting closure",
	model.StatusNeedsFollowUp:     "Schedule follow-up and confirm the fix held before closing",
	model.StatusNotResolved:       "Continue troubleshooting - do NOT close this case yet",
}

func renderConfidencePanel(score int, status model.ResolutionStatus, riskFactors []string) string {
	risks := "• None detected"
	if len(riskFactors) > 0 {
		var lines []string
		seen := make(map[string]bool)
		for _, r := range riskFactors {
			if seen[r] {
				continue
			}
			seen[r] = true
			lines = append(lines, fmt.Sprintf("• Unresolved signal: '%s'", r))
		}
		risks = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`🎯 RESOLUTION CONFIDENCE ANALYSIS:

📊 CONFIDENCE SCORE: %d%%
📋 CASE STATUS: %s

⚠️ RISK FACTORS:
%s

💡 RECOMMENDATION:
%s`, score, status, risks, statusRecommendations[status])
}
