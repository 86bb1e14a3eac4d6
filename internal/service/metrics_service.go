package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sentriguide/sentriguide-go/internal/model"
	"go.uber.org/zap"
)

// 工程师两次回复间隔超过该阈值计一次升级预警
const slowResponseGap = 5 * time.Minute

const satisfactionTrendCap = 10

// MetricsService 会话级实时指标服务
type MetricsService struct {
	logger *zap.Logger
}

// NewMetricsService 创建实时指标服务
func NewMetricsService(logger *zap.Logger) *MetricsService {
	return &MetricsService{logger: logger}
}

// NewSession 初始化一段新会话的指标
func (s *MetricsService) NewSession(now time.Time) model.SessionMetrics {
	return model.SessionMetrics{SessionStart: now}
}

// RecordResponse 记录一条工程师回复，滚动更新平均长度并检测响应间隔
func (s *MetricsService) RecordResponse(m *model.SessionMetrics, msgLen int, now time.Time) {
	if !m.LastResponseTime.IsZero() && now.Sub(m.LastResponseTime) > slowResponseGap {
		m.EscalationWarnings++
		s.logger.Warn("工程师响应间隔过长",
			zap.Duration("gap", now.Sub(m.LastResponseTime)),
			zap.Int("warnings", m.EscalationWarnings))
	}

	m.MessagesSent++
	m.AvgResponseLength = (m.AvgResponseLength*float64(m.MessagesSent-1) + float64(msgLen)) / float64(m.MessagesSent)
	m.LastResponseTime = now
}

// TrackSatisfaction 追加一次满意度采样，只保留最近十次
func (s *MetricsService) TrackSatisfaction(m *model.SessionMetrics, satisfaction int) {
	m.SatisfactionTrend = append(m.SatisfactionTrend, satisfaction)
	if len(m.SatisfactionTrend) > satisfactionTrendCap {
		m.SatisfactionTrend = m.SatisfactionTrend[len(m.SatisfactionTrend)-satisfactionTrendCap:]
	}
}

// Dashboard 渲染实时绩效仪表盘文本
func (s *MetricsService) Dashboard(m model.SessionMetrics, sentiment model.SentimentState,
	resolution model.ResolutionState, perf model.PerformanceMetrics,
	conversationLen int, now time.Time) string {

	duration := now.Sub(m.SessionStart)
	rate := 0.0
	if minutes := duration.Minutes(); minutes > 0 {
		rate = float64(m.MessagesSent) / minutes
	}

	rateLabel := "TOO SLOW"
	switch {
	case rate > 1.5:
		rateLabel = "EXCELLENT"
	case rate > 1.0:
		rateLabel = "GOOD"
	case rate > 0.5:
		rateLabel = "NEEDS IMPROVEMENT"
	}

	lengthLabel := "OPTIMAL"
	switch {
	case m.AvgResponseLength > 200:
		lengthLabel = "TOO VERBOSE"
	case m.AvgResponseLength < 50:
		lengthLabel = "TOO BRIEF"
	}

	trendLabel := satisfactionTrendLabel(m.SatisfactionTrend)

	satisfactionLabel := "LOW"
	switch {
	case sentiment.Satisfaction >= 80:
		satisfactionLabel = "HIGH"
	case sentiment.Satisfaction >= 60:
		satisfactionLabel = "MEDIUM"
	}

	var b strings.Builder
	b.WriteString("📊 REAL-TIME PERFORMANCE DASHBOARD:\n\n")
	fmt.Fprintf(&b, "⏱️ SESSION DURATION: %dm %ds\n", int(duration.Minutes()), int(duration.Seconds())%60)
	fmt.Fprintf(&b, "💬 MESSAGES SENT: %d\n", m.MessagesSent)
	fmt.Fprintf(&b, "📏 AVG RESPONSE LENGTH: %.0f chars (%s)\n", m.AvgResponseLength, lengthLabel)
	fmt.Fprintf(&b, "🚀 RESPONSE RATE: %.1f/min (%s)\n", rate, rateLabel)
	fmt.Fprintf(&b, "📈 SATISFACTION TREND: %s (current: %d%% - %s)\n",
		trendLabel, sentiment.Satisfaction, satisfactionLabel)

	b.WriteString("\n🚨 ACTIVE ALERTS:\n")
	var alerts []string
	if m.EscalationWarnings > 0 {
		alerts = append(alerts, fmt.Sprintf("• Slow responses detected - %d gap(s) over 5 minutes", m.EscalationWarnings))
	}
	if conversationLen > 8 {
		alerts = append(alerts, "• Long conversation - consider escalation")
	}
	if sentiment.Emotion == model.EmotionFrustrated && m.MessagesSent > 3 {
		alerts = append(alerts, "• Customer frustration persists - adjust approach")
	}
	if resolution.Score < 50 && m.MessagesSent > 4 {
		alerts = append(alerts, "• Low resolution confidence - revisit the root cause")
	}
	if len(alerts) == 0 {
		alerts = append(alerts, "No alerts - performance on track ✅")
	}
	b.WriteString(strings.Join(alerts, "\n"))

	b.WriteString("\n\n💡 RECOMMENDATIONS:\n")
	b.WriteString(strings.Join(recommendations(m.MessagesSent, perf), "\n"))

	fmt.Fprintf(&b, "\n\n🎯 NEXT GOAL: %s", nextGoal(resolution.Score, sentiment.Satisfaction, m.MessagesSent))

	return b.String()
}

// satisfactionTrendLabel 比较最近一次与三次前的采样
func satisfactionTrendLabel(trend []int) string {
	if len(trend) < 3 {
		return "STABLE"
	}
	delta := trend[len(trend)-1] - trend[len(trend)-3]
	switch {
	case delta > 10:
		return "IMPROVING"
	case delta < -10:
		return "DECLINING"
	default:
		return "STABLE"
	}
}

func recommendations(messagesSent int, perf model.PerformanceMetrics) []string {
	if messagesSent < 5 {
		return []string{
			"• Continue building context with the customer",
			"• Monitor the satisfaction trend as the session develops",
		}
	}

	var recs []string
	if isWeak(perf.EmpathyLevel) {
		recs = append(recs, "• Add empathy statements to your next responses")
	}
	if isWeak(perf.TechnicalAccuracy) {
		recs = append(recs, "• Provide more specific technical steps")
	}
	if isWeak(perf.CommunicationClarity) {
		recs = append(recs, "• Shorten responses into clear numbered steps")
	}
	if isWeak(perf.SessionProgress) {
		recs = append(recs, "• Recap progress and confirm the remaining plan")
	}
	if isWeak(perf.ResponseTime) {
		recs = append(recs, "• Respond faster to keep the customer engaged")
	}
	if len(recs) == 0 {
		recs = append(recs, "• Keep the current approach - metrics look healthy")
	}
	return recs
}

func nextGoal(resolutionScore, satisfaction, messagesSent int) string {
	switch {
	case resolutionScore < 70:
		return "Raise resolution confidence above 70%"
	case satisfaction < 80:
		return "Lift customer satisfaction above 80%"
	case messagesSent > 6:
		return "Drive the conversation toward closure"
	default:
		return "Maintain current performance"
	}
}
