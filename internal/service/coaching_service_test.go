package service

import (
	"strings"
	"testing"

	"github.com/sentriguide/sentriguide-go/internal/model"
	"go.uber.org/zap"
)

func TestCoachOutstandingResponse(t *testing.T) {
	svc := NewCoachingService(zap.NewNop())
	sentiment := model.SentimentState{Emotion: model.EmotionFrustrated, Urgency: model.UrgencyMedium, Satisfaction: 20}
	resolution := model.ResolutionState{Score: 85, Status: model.StatusPartiallyResolved}

	metrics, feedback := svc.Coach(
		"I understand this is frustrating, I'm sorry. First, open Trend Micro security and navigate to the scan page, then select Full Scan.",
		sentiment, resolution, 4)

	if metrics.EmpathyLevel != model.GradeExcellent {
		t.Fatalf("expected excellent empathy, got %s", metrics.EmpathyLevel)
	}
	if metrics.TechnicalAccuracy != model.GradeExcellent {
		t.Fatalf("expected excellent accuracy, got %s", metrics.TechnicalAccuracy)
	}
	if metrics.CommunicationClarity != model.GradeExcellent {
		t.Fatalf("expected excellent clarity, got %s", metrics.CommunicationClarity)
	}
	if !strings.Contains(feedback, "🌟 OUTSTANDING PERFORMANCE") {
		t.Fatalf("expected outstanding overall:\n%s", feedback)
	}
	if strings.Contains(feedback, "🔸 COACHING TIPS") {
		t.Fatalf("no coaching tips expected for all-excellent metrics:\n%s", feedback)
	}
	// 客户沮丧时行动项固定从安抚开始
	if !strings.Contains(feedback, "1. Acknowledge frustration immediately") {
		t.Fatalf("expected frustration action chain:\n%s", feedback)
	}
}

func TestCoachTerseResponse(t *testing.T) {
	svc := NewCoachingService(zap.NewNop())
	sentiment := model.SentimentState{Emotion: model.EmotionNeutral, Urgency: model.UrgencyMedium, Satisfaction: 65}
	resolution := model.ResolutionState{Score: 40, Status: model.StatusNotResolved}

	metrics, feedback := svc.Coach("try again", sentiment, resolution, 10)

	if metrics.CommunicationClarity != model.GradePoor {
		t.Fatalf("expected poor clarity for tiny message, got %s", metrics.CommunicationClarity)
	}
	if metrics.TechnicalAccuracy != model.GradePoor {
		t.Fatalf("expected poor accuracy, got %s", metrics.TechnicalAccuracy)
	}
	if metrics.ResponseTime != model.GradeNeedsImprovement {
		t.Fatalf("expected slow response grade past 8 messages, got %s", metrics.ResponseTime)
	}
	if !strings.Contains(feedback, "Use specific step-by-step instructions") {
		t.Fatalf("expected accuracy coaching tip:\n%s", feedback)
	}
	// 置信度低于 60 时行动项要求先澄清
	if !strings.Contains(feedback, "1. Ask a clarifying question") {
		t.Fatalf("expected clarifying action chain:\n%s", feedback)
	}
}

func TestGradeEmpathyStricterForNegativeEmotions(t *testing.T) {
	msg := "Thanks for waiting, let me help you with that right away today."

	if g := gradeEmpathy(msg, model.EmotionFrustrated); g != model.GradeGood {
		t.Fatalf("one empathy phrase under frustration should grade good, got %s", g)
	}
	if g := gradeEmpathy(msg, model.EmotionNeutral); g != model.GradeExcellent {
		t.Fatalf("one empathy phrase under neutral should grade excellent, got %s", g)
	}
}

func TestOverallAssessmentTiers(t *testing.T) {
	strong := model.PerformanceMetrics{
		ResponseTime:         model.GradeExcellent,
		EmpathyLevel:         model.GradeGood,
		TechnicalAccuracy:    model.GradeGood,
		CommunicationClarity: model.GradeNeedsImprovement,
		SessionProgress:      model.GradeOnTrack,
	}
	if got := overallAssessment(strong); got != "✅ STRONG PERFORMANCE" {
		t.Fatalf("expected strong tier, got %q", got)
	}

	attention := model.PerformanceMetrics{
		ResponseTime:         model.GradeNeedsImprovement,
		EmpathyLevel:         model.GradeNeedsImprovement,
		TechnicalAccuracy:    model.GradeNeedsImprovement,
		CommunicationClarity: model.GradePoor,
		SessionProgress:      model.GradePoor,
	}
	if got := overallAssessment(attention); got != "🚨 REQUIRES ATTENTION" {
		t.Fatalf("expected attention tier, got %q", got)
	}
}
