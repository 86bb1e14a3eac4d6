package service

import (
	"fmt"
	"strings"

	"github.com/sentriguide/sentriguide-go/internal/model"
	"github.com/sentriguide/sentriguide-go/internal/textmatch"
	"go.uber.org/zap"
)

var empathyPhrases = []string{
	"i understand", "i can see", "that must be", "i'm sorry", "i apologize",
	"frustrating", "concerning", "i hear you", "absolutely", "definitely",
	"let me help", "i'll take care", "no worries", "completely understand",
}

var technicalTerms = []string{
	"trend micro", "antivirus", "security", "scan", "quarantine", "firewall",
	"real-time", "protection", "malware", "virus", "update", "activation",
	"subscription", "license", "account", "portal", "installation", "configuration",
}

var accuracyIndicators = []string{
	"step by step", "first", "then", "next", "finally", "follow these",
	"navigate to", "click on", "select", "install", "download", "configure",
}

var clarityIndicators = []string{
	"let me", "here's how", "you can", "simply", "just", "easy",
	"step 1", "step 2", "first", "second", "then", "next", "finally",
}

var jargonTerms = []string{
	"configuration", "implementation", "infrastructure", "methodology",
	"optimization", "parameters", "specifications", "protocols",
}

// 负面情绪下的共情辅导提示
var empathyTipsByEmotion = map[model.Emotion]string{
	model.EmotionFrustrated: "Acknowledge the customer's frustration before offering technical steps",
	model.EmotionUrgent:     "Signal urgency awareness: 'I see this is urgent, let me address it right away'",
	model.EmotionWorried:    "Reassure the customer about safety before diving into detail",
}

// CoachingService 工程师绩效辅导服务
type CoachingService struct {
	logger *zap.Logger
}

// NewCoachingService 创建绩效辅导服务
func NewCoachingService(logger *zap.Logger) *CoachingService {
	return &CoachingService{logger: logger}
}

// Coach 评估最近一条工程师回复并生成辅导反馈面板
func (s *CoachingService) Coach(engineerMsg string, sentiment model.SentimentState,
	resolution model.ResolutionState, conversationLen int) (model.PerformanceMetrics, string) {

	metrics := model.PerformanceMetrics{
		ResponseTime:         gradeResponseTime(conversationLen),
		EmpathyLevel:         gradeEmpathy(engineerMsg, sentiment.Emotion),
		TechnicalAccuracy:    gradeTechnicalAccuracy(engineerMsg),
		CommunicationClarity: gradeClarity(engineerMsg),
		SessionProgress:      gradeProgress(resolution.Score, conversationLen),
	}

	feedback := s.renderFeedback(metrics, sentiment, resolution)

	s.logger.Info("绩效辅导评估完成",
		zap.String("empathy", string(metrics.EmpathyLevel)),
		zap.String("accuracy", string(metrics.TechnicalAccuracy)),
		zap.String("clarity", string(metrics.CommunicationClarity)))

	return metrics, feedback
}

func gradeResponseTime(conversationLen int) model.Grade {
	switch {
	case conversationLen > 8:
		return model.GradeNeedsImprovement
	case conversationLen > 5:
		return model.GradeGood
	default:
		return model.GradeExcellent
	}
}

// gradeEmpathy 负面情绪下要求更多共情表达
func gradeEmpathy(msg string, emotion model.Emotion) model.Grade {
	count := textmatch.CountMatches(msg, empathyPhrases)

	if emotion == model.EmotionFrustrated || emotion == model.EmotionUrgent || emotion == model.EmotionWorried {
		switch {
		case count >= 2:
			return model.GradeExcellent
		case count >= 1:
			return model.GradeGood
		default:
			return model.GradeNeedsImprovement
		}
	}

	switch {
	case count >= 1:
		return model.GradeExcellent
	case len(msg) > 50:
		return model.GradeGood
	default:
		return model.GradeNeedsImprovement
	}
}

func gradeTechnicalAccuracy(msg string) model.Grade {
	terms := textmatch.CountMatches(msg, technicalTerms)
	indicators := textmatch.CountMatches(msg, accuracyIndicators)

	switch {
	case terms >= 3 && indicators >= 2:
		return model.GradeExcellent
	case terms >= 2 || indicators >= 1:
		return model.GradeGood
	case terms >= 1:
		return model.GradeNeedsImprovement
	default:
		return model.GradePoor
	}
}

func gradeClarity(msg string) model.Grade {
	if len(msg) < 20 {
		return model.GradePoor
	}

	clarity := textmatch.CountMatches(msg, clarityIndicators)
	jargon := textmatch.CountMatches(msg, jargonTerms)

	switch {
	case clarity >= 2 && jargon <= 1:
		return model.GradeExcellent
	case clarity >= 1 && jargon <= 2:
		return model.GradeGood
	case jargon <= 3:
		return model.GradeNeedsImprovement
	default:
		return model.GradePoor
	}
}

func gradeProgress(resolutionScore, conversationLen int) model.Grade {
	switch {
	case resolutionScore >= 80:
		return model.GradeExcellent
	case resolutionScore >= 60:
		return model.GradeGood
	case conversationLen <= 4:
		return model.GradeOnTrack
	case conversationLen <= 8:
		return model.GradeNeedsImprovement
	default:
		return model.GradePoor
	}
}

func overallAssessment(metrics model.PerformanceMetrics) string {
	excellent, good, needsWork := 0, 0, 0
	for _, g := range []model.Grade{
		metrics.ResponseTime, metrics.EmpathyLevel, metrics.TechnicalAccuracy,
		metrics.CommunicationClarity, metrics.SessionProgress,
	} {
		switch g {
		case model.GradeExcellent:
			excellent++
		case model.GradeGood:
			good++
		case model.GradeNeedsImprovement:
			needsWork++
		}
	}

	switch {
	case excellent >= 3:
		return "🌟 OUTSTANDING PERFORMANCE"
	case excellent+good >= 3:
		return "✅ STRONG PERFORMANCE"
	case needsWork <= 2:
		return "⚠️ ROOM FOR IMPROVEMENT"
	default:
		return "🚨 REQUIRES ATTENTION"
	}
}

func displayGrade(g model.Grade) string {
	return strings.ToUpper(strings.ReplaceAll(string(g), "_", " "))
}

func isWeak(g model.Grade) bool {
	return g == model.GradeNeedsImprovement || g == model.GradePoor
}

func (s *CoachingService) renderFeedback(metrics model.PerformanceMetrics,
	sentiment model.SentimentState, resolution model.ResolutionState) string {

	var tips []string
	if isWeak(metrics.EmpathyLevel) {
		tip, ok := empathyTipsByEmotion[sentiment.Emotion]
		if !ok {
			tip = "Add an empathy phrase such as 'I understand' before the solution"
		}
		tips = append(tips, tip)
	}
	if isWeak(metrics.TechnicalAccuracy) {
		tips = append(tips, "Use specific step-by-step instructions with product terminology")
	}
	if isWeak(metrics.CommunicationClarity) {
		tips = append(tips, "Break the answer into short, numbered steps and avoid jargon")
	}
	if isWeak(metrics.SessionProgress) {
		tips = append(tips, "Summarize progress so far and agree next steps with the customer")
	}
	if isWeak(metrics.ResponseTime) {
		tips = append(tips, "Keep responses prompt - long conversations raise escalation risk")
	}

	var practices []string
	if metrics.EmpathyLevel == model.GradeExcellent {
		practices = append(practices, "Strong empathy - keep validating the customer's experience")
	}
	if metrics.TechnicalAccuracy == model.GradeExcellent {
		practices = append(practices, "Accurate step-by-step guidance - keep referencing exact product paths")
	}
	if metrics.CommunicationClarity == model.GradeExcellent {
		practices = append(practices, "Clear structure - the customer can follow along easily")
	}
	if metrics.SessionProgress == model.GradeExcellent {
		practices = append(practices, "Resolution on track - prepare closure confirmation")
	}
	if metrics.ResponseTime == model.GradeExcellent {
		practices = append(practices, "Responsive pacing - conversation moving efficiently")
	}

	var actions string
	switch {
	case sentiment.Emotion == model.EmotionFrustrated:
		actions = "1. Acknowledge frustration immediately\n2. Apologize for the inconvenience\n3. Offer a concrete fix with a timeline"
	case sentiment.Urgency == model.UrgencyHigh:
		actions = "1. Prioritize this case now\n2. Give the customer a clear ETA\n3. Escalate if the fix is not immediate"
	case resolution.Score < 60:
		actions = "1. Ask a clarifying question\n2. Confirm the proposed fix was applied\n3. Verify the result with the customer"
	default:
		actions = "1. Continue current approach\n2. Verify the solution works end to end\n3. Move toward case closure"
	}

	var b strings.Builder
	b.WriteString("🎯 PERFORMANCE COACHING ANALYSIS:\n\n📊 CURRENT METRICS:\n")
	fmt.Fprintf(&b, "⏱️ Response Time: %s\n", displayGrade(metrics.ResponseTime))
	fmt.Fprintf(&b, "💝 Empathy Level: %s\n", displayGrade(metrics.EmpathyLevel))
	fmt.Fprintf(&b, "🔧 Technical Accuracy: %s\n", displayGrade(metrics.TechnicalAccuracy))
	fmt.Fprintf(&b, "💬 Communication Clarity: %s\n", displayGrade(metrics.CommunicationClarity))
	fmt.Fprintf(&b, "📈 Session Progress: %s\n", displayGrade(metrics.SessionProgress))

	if len(tips) > 0 {
		b.WriteString("\n🔸 COACHING TIPS:\n")
		for _, tip := range tips {
			fmt.Fprintf(&b, "• %s\n", tip)
		}
	}
	if len(practices) > 0 {
		b.WriteString("\n🏆 BEST PRACTICES OBSERVED:\n")
		for _, p := range practices {
			fmt.Fprintf(&b, "• %s\n", p)
		}
	}

	fmt.Fprintf(&b, "\n🎯 IMMEDIATE ACTION ITEMS:\n%s\n", actions)
	fmt.Fprintf(&b, "\n📋 OVERALL: %s", overallAssessment(metrics))

	return b.String()
}
