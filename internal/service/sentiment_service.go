package service

import (
	"fmt"
	"strings"

	"github.com/sentriguide/sentriguide-go/internal/model"
	"github.com/sentriguide/sentriguide-go/internal/textmatch"
	"go.uber.org/zap"
)

// 六类情绪的短语权重表，逐条对应既有判定行为，不可增删
var frustratedPatterns = []textmatch.Pattern{
	{Phrase: "this is ridiculous", Weight: 3}, {Phrase: "this is stupid", Weight: 3}, {Phrase: "this is terrible", Weight: 3},
	{Phrase: "not working", Weight: 2}, {Phrase: "still not", Weight: 2}, {Phrase: "keep getting", Weight: 2}, {Phrase: "tried everything", Weight: 2},
	{Phrase: "waste of time", Weight: 3}, {Phrase: "sick of this", Weight: 3}, {Phrase: "fed up", Weight: 3}, {Phrase: "had enough", Weight: 3},
	{Phrase: "frustrated", Weight: 2}, {Phrase: "annoying", Weight: 2}, {Phrase: "horrible", Weight: 2}, {Phrase: "awful", Weight: 2}, {Phrase: "terrible", Weight: 2},
	{Phrase: "angry", Weight: 2}, {Phrase: "mad", Weight: 2}, {Phrase: "upset", Weight: 2}, {Phrase: "irritated", Weight: 2}, {Phrase: "furious", Weight: 3},
	{Phrase: "useless", Weight: 2}, {Phrase: "broken", Weight: 2}, {Phrase: "garbage", Weight: 3}, {Phrase: "worst", Weight: 2}, {Phrase: "hate", Weight: 3},
}

var satisfiedPatterns = []textmatch.Pattern{
	{Phrase: "thank you", Weight: 2}, {Phrase: "thanks", Weight: 2}, {Phrase: "appreciate", Weight: 2}, {Phrase: "helpful", Weight: 2}, {Phrase: "great", Weight: 2},
	{Phrase: "excellent", Weight: 2}, {Phrase: "perfect", Weight: 2}, {Phrase: "amazing", Weight: 2}, {Phrase: "wonderful", Weight: 2}, {Phrase: "fantastic", Weight: 2},
	{Phrase: "works perfectly", Weight: 3}, {Phrase: "fixed it", Weight: 2}, {Phrase: "solved", Weight: 2}, {Phrase: "resolved", Weight: 2},
	{Phrase: "good", Weight: 1}, {Phrase: "better", Weight: 1}, {Phrase: "working now", Weight: 2}, {Phrase: "that worked", Weight: 2},
	{Phrase: "happy", Weight: 2}, {Phrase: "pleased", Weight: 2}, {Phrase: "satisfied", Weight: 2}, {Phrase: "love", Weight: 2},
}

var urgentPatterns = []textmatch.Pattern{
	{Phrase: "urgent", Weight: 2}, {Phrase: "emergency", Weight: 3}, {Phrase: "critical", Weight: 2}, {Phrase: "asap", Weight: 2}, {Phrase: "immediately", Weight: 2},
	{Phrase: "right now", Weight: 2}, {Phrase: "can't wait", Weight: 2}, {Phrase: "need help now", Weight: 3}, {Phrase: "broken down", Weight: 2},
	{Phrase: "not working at all", Weight: 3}, {Phrase: "completely broken", Weight: 3}, {Phrase: "dead", Weight: 2}, {Phrase: "crashed", Weight: 2},
	{Phrase: "lost everything", Weight: 3}, {Phrase: "virus", Weight: 2}, {Phrase: "hacked", Weight: 3}, {Phrase: "breach", Weight: 3}, {Phrase: "compromised", Weight: 3},
}

var confusedPatterns = []textmatch.Pattern{
	{Phrase: "don't understand", Weight: 2}, {Phrase: "confused", Weight: 2}, {Phrase: "unclear", Weight: 2}, {Phrase: "what does", Weight: 1},
	{Phrase: "how do i", Weight: 1}, {Phrase: "what is", Weight: 1}, {Phrase: "explain", Weight: 1}, {Phrase: "not sure", Weight: 1}, {Phrase: "help me understand", Weight: 2},
	{Phrase: "i don't know", Weight: 2}, {Phrase: "what's the difference", Weight: 1}, {Phrase: "which one", Weight: 1}, {Phrase: "where do i", Weight: 1},
	{Phrase: "step by step", Weight: 1}, {Phrase: "walk me through", Weight: 2}, {Phrase: "show me how", Weight: 2},
}

var worriedPatterns = []textmatch.Pattern{
	{Phrase: "worried", Weight: 2}, {Phrase: "concerned", Weight: 2}, {Phrase: "afraid", Weight: 2}, {Phrase: "scared", Weight: 2}, {Phrase: "nervous", Weight: 2},
	{Phrase: "what if", Weight: 1}, {Phrase: "might happen", Weight: 1}, {Phrase: "could this", Weight: 1}, {Phrase: "is this normal", Weight: 1},
	{Phrase: "should i be", Weight: 1}, {Phrase: "is it safe", Weight: 2}, {Phrase: "will i lose", Weight: 2}, {Phrase: "am i protected", Weight: 2},
}

var impatientPatterns = []textmatch.Pattern{
	{Phrase: "how long", Weight: 1}, {Phrase: "still waiting", Weight: 2}, {Phrase: "been hours", Weight: 2}, {Phrase: "taking forever", Weight: 2},
	{Phrase: "when will", Weight: 1}, {Phrase: "how much longer", Weight: 2}, {Phrase: "this is slow", Weight: 2}, {Phrase: "hurry up", Weight: 3},
	{Phrase: "speed this up", Weight: 2}, {Phrase: "taking too long", Weight: 2}, {Phrase: "why so slow", Weight: 2},
}

var highUrgencyPhrases = []string{"asap", "emergency", "critical", "immediately", "right now", "urgent", "can't wait", "need help now"}
var mediumUrgencyPhrases = []string{"soon", "quickly", "when will", "how long", "need this fixed", "time sensitive"}
var businessContextWords = []string{"work", "business", "office", "meeting", "deadline", "presentation"}
var timingWords = []string{"when", "time", "soon", "quick"}
var technicalWords = []string{"log", "error", "code", "configuration", "registry", "firewall"}
var formalWords = []string{"please", "kindly", "would you"}

// 情绪判定固定顺序：得分并列时靠前者胜出
var emotionOrder = []model.Emotion{
	model.EmotionFrustrated,
	model.EmotionSatisfied,
	model.EmotionUrgent,
	model.EmotionConfused,
	model.EmotionWorried,
	model.EmotionImpatient,
}

// 各情绪的满意度基线、情感分乘数与取值区间
var satisfactionTable = map[model.Emotion]struct {
	base, mult, min, max int
}{
	model.EmotionSatisfied:  {85, 5, 75, 95},
	model.EmotionFrustrated: {25, 10, 5, 40},
	model.EmotionUrgent:     {45, 5, 30, 60},
	model.EmotionWorried:    {35, 8, 20, 50},
	model.EmotionConfused:   {55, 5, 40, 70},
	model.EmotionImpatient:  {30, 8, 15, 45},
	model.EmotionNeutral:    {65, 10, 50, 80},
}

type toneGuidance struct {
	tone     string
	empathy  string
	approach string
}

var toneGuidanceTable = map[model.Emotion]toneGuidance{
	model.EmotionFrustrated: {
		tone:     "🚨 EMPATHETIC & SOLUTION-FOCUSED: Acknowledge frustration immediately, apologize for the inconvenience, focus on quick resolution",
		empathy:  "Say: 'I understand this is frustrating. Let me help resolve this right away.' Validate their experience and show urgency to help",
		approach: "Immediate acknowledgment → Quick apology → Direct solution → Follow-up confirmation",
	},
	model.EmotionUrgent: {
		tone:     "⚡ DIRECT & EFFICIENT: Skip pleasantries, get straight to solutions, provide clear timelines",
		empathy:  "Say: 'I see this is urgent. Let me address this immediately.' Prioritize speed and efficiency over detailed explanations",
		approach: "Immediate action → Clear steps → Timeline expectations → Escalation path if needed",
	},
	model.EmotionConfused: {
		tone:     "📚 PATIENT & EDUCATIONAL: Use simple language, break down steps, check understanding frequently",
		empathy:  "Say: 'Let me walk you through this step-by-step.' Use analogies and confirm understanding at each step",
		approach: "Simple explanation → Step-by-step guidance → Comprehension checks → Alternative explanations if needed",
	},
	model.EmotionWorried: {
		tone:     "🛡️ REASSURING & INFORMATIVE: Provide reassurance about security, explain safety measures clearly",
		empathy:  "Say: 'I understand your concern. Let me explain what's happening and how we'll protect you.' Focus on safety and prevention",
		approach: "Address concerns → Explain safety measures → Provide reassurance → Preventive guidance",
	},
	model.EmotionSatisfied: {
		tone:     "✅ PROFESSIONAL & THOROUGH: Maintain current positive momentum, ensure nothing is missed",
		empathy:  "Say: 'I'm glad that helped! Is there anything else I can assist you with?' Reinforce positive experience",
		approach: "Acknowledge success → Complete any remaining items → Offer additional help → Positive closure",
	},
	model.EmotionImpatient: {
		tone:     "⏰ EFFICIENT & RESPONSIVE: Move quickly through solutions, provide specific timelines",
		empathy:  "Say: 'I'll get this resolved quickly for you.' Focus on speed and provide time estimates for each step",
		approach: "Quick acknowledgment → Fast-track solution → Time estimates → Efficient execution",
	},
	model.EmotionNeutral: {
		tone:     "🤝 STANDARD PROFESSIONAL: Be helpful, informative, and maintain friendly demeanor",
		empathy:  "Maintain standard professional courtesy while being thorough and helpful",
		approach: "Professional greeting → Understand issue → Provide solution → Confirm satisfaction",
	},
}

// SentimentService 客户情绪分析服务
type SentimentService struct {
	logger *zap.Logger
}

// NewSentimentService 创建情绪分析服务
func NewSentimentService(logger *zap.Logger) *SentimentService {
	return &SentimentService{logger: logger}
}

// Analyze 分析最新客户消息，输出情绪、紧急度、满意度与应对建议。
// 同一输入重复调用结果一致（固定表 + 最新消息的纯函数）。
func (s *SentimentService) Analyze(latestCustomerMsg string) model.SentimentState {
	scores := make(map[model.Emotion]int, len(emotionOrder))
	sentimentScore := 0

	frustratedHits, frustratedTotal := textmatch.Match(latestCustomerMsg, frustratedPatterns)
	scores[model.EmotionFrustrated] = frustratedTotal
	sentimentScore -= frustratedTotal

	satisfiedHits, satisfiedTotal := textmatch.Match(latestCustomerMsg, satisfiedPatterns)
	scores[model.EmotionSatisfied] = satisfiedTotal
	sentimentScore += satisfiedTotal

	urgentHits, urgentTotal := textmatch.Match(latestCustomerMsg, urgentPatterns)
	scores[model.EmotionUrgent] = urgentTotal

	confusedHits, confusedTotal := textmatch.Match(latestCustomerMsg, confusedPatterns)
	scores[model.EmotionConfused] = confusedTotal

	worriedHits, worriedTotal := textmatch.Match(latestCustomerMsg, worriedPatterns)
	scores[model.EmotionWorried] = worriedTotal

	impatientHits, impatientTotal := textmatch.Match(latestCustomerMsg, impatientPatterns)
	scores[model.EmotionImpatient] = impatientTotal
	sentimentScore -= len(impatientHits) // 不耐烦按命中条数轻度扣分，不按权重

	dominant := emotionOrder[0]
	maxScore := scores[dominant]
	for _, e := range emotionOrder[1:] {
		if scores[e] > maxScore {
			dominant = e
			maxScore = scores[e]
		}
	}

	var emotion model.Emotion
	switch {
	case maxScore >= 2:
		emotion = dominant
	case sentimentScore >= 2:
		emotion = model.EmotionSatisfied
	case sentimentScore <= -2:
		emotion = model.EmotionFrustrated
	default:
		emotion = model.EmotionNeutral
	}

	// urgent 得分达到阈值时覆盖其他判定
	if scores[model.EmotionUrgent] >= 2 {
		emotion = model.EmotionUrgent
	}

	urgency := s.deriveUrgency(latestCustomerMsg, scores[model.EmotionUrgent], emotion)
	satisfaction := satisfactionFor(emotion, sentimentScore)
	analysis := s.renderAnalysis(latestCustomerMsg, emotion, urgency, satisfaction, maxScore,
		collectIndicators(
			hitSet{frustratedHits, frustratedPatterns},
			hitSet{satisfiedHits, satisfiedPatterns},
			hitSet{urgentHits, urgentPatterns},
			hitSet{confusedHits, confusedPatterns},
			hitSet{worriedHits, worriedPatterns},
			hitSet{impatientHits, impatientPatterns}))

	s.logger.Info("情绪分析完成",
		zap.String("emotion", string(emotion)),
		zap.String("urgency", string(urgency)),
		zap.Int("satisfaction", satisfaction))

	return model.SentimentState{
		Emotion:      emotion,
		Urgency:      urgency,
		Satisfaction: satisfaction,
		Analysis:     analysis,
	}
}

func (s *SentimentService) deriveUrgency(msg string, urgentScore int, emotion model.Emotion) model.Urgency {
	urgencyScore := urgentScore
	urgencyScore += 2 * textmatch.CountMatches(msg, highUrgencyPhrases)
	urgencyScore += textmatch.CountMatches(msg, mediumUrgencyPhrases)
	if textmatch.ContainsAny(msg, businessContextWords) {
		urgencyScore++
	}

	switch {
	case urgencyScore >= 3 || emotion == model.EmotionUrgent:
		return model.UrgencyHigh
	case urgencyScore >= 1 || textmatch.ContainsAny(msg, timingWords):
		return model.UrgencyMedium
	default:
		return model.UrgencyLow
	}
}

// satisfactionFor 按情绪基线加情感分折算满意度，并夹在情绪对应区间内
func satisfactionFor(emotion model.Emotion, sentimentScore int) int {
	entry, ok := satisfactionTable[emotion]
	if !ok {
		entry = satisfactionTable[model.EmotionNeutral]
	}
	v := entry.base + sentimentScore*entry.mult
	if v < entry.min {
		v = entry.min
	}
	if v > entry.max {
		v = entry.max
	}
	return v
}

type hitSet struct {
	hits  []string
	table []textmatch.Pattern
}

func collectIndicators(sets ...hitSet) []string {
	var indicators []string
	for _, set := range sets {
		weights := make(map[string]int, len(set.table))
		for _, p := range set.table {
			weights[p.Phrase] = p.Weight
		}
		for _, h := range set.hits {
			indicators = append(indicators, fmt.Sprintf("'%s' (weight: %d)", h, weights[h]))
		}
	}
	return indicators
}

func (s *SentimentService) renderAnalysis(msg string, emotion model.Emotion, urgency model.Urgency,
	satisfaction, maxScore int, indicators []string) string {

	guidance := toneGuidanceTable[emotion]

	msgStyle := "Concise message"
	if len(msg) > 100 {
		msgStyle = "Detailed communication"
	}
	techLevel := "General user"
	if textmatch.ContainsAny(msg, technicalWords) {
		techLevel = "High-tech user"
	}
	commStyle := "Casual"
	if textmatch.ContainsAny(msg, formalWords) {
		commStyle = "Formal"
	}

	detected := "Standard neutral language patterns"
	if len(indicators) > 0 {
		if len(indicators) > 5 {
			indicators = indicators[:5]
		}
		detected = strings.Join(indicators, ", ")
	}

	firstStep := strings.Split(guidance.approach, " → ")[0]
	firstEmpathy := strings.Split(guidance.empathy, ".")[0]

	return fmt.Sprintf(`🧠 ENHANCED SENTIMENT ANALYSIS:

😊 EMOTION DETECTED: %s
⚡ URGENCY LEVEL: %s
📊 SATISFACTION ESTIMATE: %d%%
🎯 CONFIDENCE: %d/5 (detection strength)

%s

💬 EMPATHY APPROACH:
%s

🔄 RESPONSE WORKFLOW:
%s

📋 CONVERSATION CONTEXT:
• Message length: %s
• Technical level: %s
• Communication style: %s
• Response priority: %s

🔍 DETECTED INDICATORS:
%s

💡 KEY RECOMMENDATION:
%s - %s`,
		strings.ToUpper(string(emotion)),
		strings.ToUpper(string(urgency)),
		satisfaction,
		maxScore,
		guidance.tone,
		guidance.empathy,
		guidance.approach,
		msgStyle,
		techLevel,
		commStyle,
		strings.ToUpper(string(urgency)),
		detected,
		firstStep, firstEmpathy)
}
