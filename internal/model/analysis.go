package model

import "time"

// Emotion 客户情绪类别（每条消息互斥）
type Emotion string

const (
	EmotionFrustrated Emotion = "frustrated"
	EmotionSatisfied  Emotion = "satisfied"
	EmotionUrgent     Emotion = "urgent"
	EmotionConfused   Emotion = "confused"
	EmotionWorried    Emotion = "worried"
	EmotionImpatient  Emotion = "impatient"
	EmotionNeutral    Emotion = "neutral"
)

// Urgency 紧急程度
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ResolutionStatus 解决状态（固定四档，防止过早关单）
type ResolutionStatus string

const (
	StatusResolved          ResolutionStatus = "RESOLVED"
	StatusPartiallyResolved ResolutionStatus = "PARTIALLY_RESOLVED"
	StatusNeedsFollowUp     ResolutionStatus = "NEEDS_FOLLOW_UP"
	StatusNotResolved       ResolutionStatus = "NOT_RESOLVED"
)

// Grade 绩效评分档位
type Grade string

const (
	GradeExcellent        Grade = "excellent"
	GradeGood             Grade = "good"
	GradeOnTrack          Grade = "on_track"
	GradeNeedsImprovement Grade = "needs_improvement"
	GradePoor             Grade = "poor"
)

// SentimentState 情绪分析结果（每条新消息整体重算）
type SentimentState struct {
	Emotion      Emotion `json:"emotion"`
	Urgency      Urgency `json:"urgency"`
	Satisfaction int     `json:"satisfaction"` // 0-100
	Analysis     string  `json:"analysis"`
}

// DefaultSentiment 会话初始/重置时的情绪状态
func DefaultSentiment() SentimentState {
	return SentimentState{Emotion: EmotionNeutral, Urgency: UrgencyMedium, Satisfaction: 70}
}

// ResolutionState 解决置信度结果
type ResolutionState struct {
	Score    int              `json:"score"` // 0-100
	Status   ResolutionStatus `json:"status"`
	Analysis string           `json:"analysis"`
}

// Article 帮助中心文章（静态目录数据，只读）
type Article struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// KnowledgeResult 知识检索结果
type KnowledgeResult struct {
	Query    string    `json:"query"`
	Articles []Article `json:"articles"`
	Rendered string    `json:"rendered"`
}

// SolutionHistoryEntry 解决方案历史条目（创建后不可变，跨会话保留）
type SolutionHistoryEntry struct {
	Timestamp       time.Time `json:"timestamp"`
	CustomerQuery   string    `json:"customerQuery"` // 截断到 100 字符
	SolutionType    string    `json:"solutionType"`
	SolutionSummary string    `json:"solutionSummary"`
	FullSolution    string    `json:"fullSolution"`
}

// PerformanceMetrics 工程师绩效指标（每轮分析整体覆盖）
type PerformanceMetrics struct {
	ResponseTime         Grade `json:"responseTime"`
	EmpathyLevel         Grade `json:"empathyLevel"`
	TechnicalAccuracy    Grade `json:"technicalAccuracy"`
	CommunicationClarity Grade `json:"communicationClarity"`
	SessionProgress      Grade `json:"sessionProgress"`
}

// SessionMetrics 会话级实时指标（会话结束时重置）
type SessionMetrics struct {
	MessagesSent       int       `json:"messagesSent"`
	AvgResponseLength  float64   `json:"avgResponseLength"`
	SessionStart       time.Time `json:"sessionStart"`
	LastResponseTime   time.Time `json:"lastResponseTime"`
	EscalationWarnings int       `json:"escalationWarnings"`
	SatisfactionTrend  []int     `json:"satisfactionTrend"` // 最近 10 次
}

// PanelSnapshot 五个分析面板的当前内容
type PanelSnapshot struct {
	Context    string `json:"context"`
	Sentiment  string `json:"sentiment"`
	Confidence string `json:"confidence"`
	Knowledge  string `json:"knowledge"`
	Coaching   string `json:"coaching"`
	Status     string `json:"status"`
}
