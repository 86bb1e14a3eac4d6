package service

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sentriguide/sentriguide-go/internal/helpcenter"
	"github.com/sentriguide/sentriguide-go/internal/model"
	"go.uber.org/zap"
)

type recordingPresenter struct {
	mu      sync.Mutex
	updates []model.PanelUpdate
}

func (p *recordingPresenter) Publish(panel, content string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates = append(p.updates, model.PanelUpdate{Panel: panel, Content: content})
}

func (p *recordingPresenter) panels(name string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, u := range p.updates {
		if u.Panel == name {
			out = append(out, u.Content)
		}
	}
	return out
}

func newTestAnalysisService(p Presenter) (*AnalysisService, *SessionService) {
	logger := zap.NewNop()
	session := NewSessionService(nil, logger)
	client := helpcenter.NewClient("http://127.0.0.1:1", time.Second, logger)

	svc := NewAnalysisService(session,
		NewSummaryService(logger),
		NewSentimentService(logger),
		NewConfidenceService(logger),
		NewKnowledgeService(client, logger),
		NewCoachingService(logger),
		NewMetricsService(logger),
		p, 0, logger)
	return svc, session
}

func TestPipelineFrustratedCustomerScenario(t *testing.T) {
	presenter := &recordingPresenter{}
	svc, session := newTestAnalysisService(presenter)

	msg := session.AppendMessage(model.RoleCustomer,
		"This is ridiculous, still not working and I need this fixed quickly!")
	svc.Run(msg)

	sentiment := session.Sentiment()
	if sentiment.Emotion != model.EmotionFrustrated {
		t.Fatalf("expected frustrated, got %s", sentiment.Emotion)
	}
	if sentiment.Satisfaction != 5 {
		t.Fatalf("expected satisfaction 5, got %d", sentiment.Satisfaction)
	}

	panels := session.Panels()
	if !strings.Contains(panels.Sentiment, "EMOTION DETECTED: FRUSTRATED") {
		t.Fatalf("sentiment panel not populated:\n%s", panels.Sentiment)
	}
	// "not working" 命中技术故障主题桶
	if !strings.Contains(panels.Knowledge, "💡 TREND MICRO TECHNICAL TROUBLESHOOTING") {
		t.Fatalf("knowledge panel missing technical header:\n%s", panels.Knowledge)
	}
	if !strings.Contains(panels.Coaching, "📊 REAL-TIME PERFORMANCE DASHBOARD") ||
		!strings.Contains(panels.Coaching, strings.Repeat("=", 60)) {
		t.Fatalf("coaching panel should combine dashboard and feedback:\n%s", panels.Coaching)
	}
	if panels.Status != "Analysis complete" {
		t.Fatalf("unexpected final status %q", panels.Status)
	}

	if len(session.Solutions()) != 1 {
		t.Fatalf("expected 1 solution history entry, got %d", len(session.Solutions()))
	}

	statuses := presenter.panels("status")
	if len(statuses) == 0 || statuses[0] != "Analyzing conversation context..." {
		t.Fatalf("expected pipeline to start with context stage, got %v", statuses)
	}
	if statuses[len(statuses)-1] != "Analysis complete" {
		t.Fatalf("expected final status broadcast, got %v", statuses)
	}
}

func TestPipelineSatisfiedCustomerScenario(t *testing.T) {
	presenter := &recordingPresenter{}
	svc, session := newTestAnalysisService(presenter)

	session.AppendMessage(model.RoleCustomer, "My scan won't finish")
	session.AppendMessage(model.RoleEngineer, "Please restart the program first, then run the scan again")
	msg := session.AppendMessage(model.RoleCustomer,
		"Thank you so much, everything is working perfectly now!")
	svc.Run(msg)

	if s := session.Sentiment(); s.Emotion != model.EmotionSatisfied || s.Satisfaction != 95 {
		t.Fatalf("expected satisfied/95, got %+v", s)
	}
	// 50 + 2 个满意词 *8 + 2 个确认短语 *10 = 86
	if r := session.Resolution(); r.Score != 86 || r.Status != model.StatusPartiallyResolved {
		t.Fatalf("expected 86/PARTIALLY_RESOLVED, got %+v", r)
	}
	if !strings.Contains(session.Panels().Context, "TOTAL MESSAGES: 3") {
		t.Fatalf("context panel not updated:\n%s", session.Panels().Context)
	}
}

func TestPipelineEngineerTriggerSkipsCustomerStages(t *testing.T) {
	presenter := &recordingPresenter{}
	svc, session := newTestAnalysisService(presenter)

	session.AppendMessage(model.RoleCustomer, "my subscription expired")
	msg := session.AppendMessage(model.RoleEngineer, "Let me help you renew it, first open your account portal")
	svc.Run(msg)

	panels := session.Panels()
	if panels.Sentiment != "" || panels.Knowledge != "" {
		t.Fatalf("engineer trigger must not run sentiment/knowledge stages: %+v", panels)
	}
	if panels.Coaching == "" {
		t.Fatalf("coaching panel should update on engineer messages")
	}
	if m := session.Metrics(); m.MessagesSent != 1 {
		t.Fatalf("expected engineer response recorded, got %+v", m)
	}
}

func TestPipelineSkipsWhenBusy(t *testing.T) {
	presenter := &recordingPresenter{}
	svc, session := newTestAnalysisService(presenter)
	msg := session.AppendMessage(model.RoleCustomer, "help")

	svc.busy.Store(true)
	svc.Run(msg)
	svc.busy.Store(false)

	if len(presenter.updates) != 0 {
		t.Fatalf("busy pipeline must skip the run entirely, got %d updates", len(presenter.updates))
	}
}

func TestPublishDropsStaleGeneration(t *testing.T) {
	presenter := &recordingPresenter{}
	svc, session := newTestAnalysisService(presenter)
	session.AppendMessage(model.RoleCustomer, "hi")

	gen := session.Generation()
	session.EndConversation()

	if svc.publish(gen, "sentiment", "stale") {
		t.Fatalf("expected stale publish to be dropped")
	}
	if len(presenter.panels("sentiment")) != 0 {
		t.Fatalf("stale content must not reach the presenter")
	}
}

func TestRunStageRecoversPanics(t *testing.T) {
	presenter := &recordingPresenter{}
	svc, session := newTestAnalysisService(presenter)
	gen := session.Generation()

	ok := svc.runStage(gen, pipelineStage{
		name:  "Knowledge",
		panel: "knowledge",
		start: "Searching knowledge base...",
		done:  "Knowledge base search complete",
		run:   func() (string, bool) { panic("boom") },
	})

	if !ok {
		t.Fatalf("pipeline should continue after a stage panic")
	}
	if got := session.Panels().Knowledge; got != "Knowledge error: boom" {
		t.Fatalf("expected panic converted to panel error, got %q", got)
	}
}

func TestConfidenceStageErrorDegradesResolution(t *testing.T) {
	presenter := &recordingPresenter{}
	svc, session := newTestAnalysisService(presenter)
	msg := session.AppendMessage(model.RoleCustomer, "it is still broken")
	gen := session.Generation()
	session.SetResolution(gen, model.ResolutionState{Score: 95, Status: model.StatusResolved})

	var confidence pipelineStage
	for _, st := range svc.buildStages(gen, msg) {
		if st.name == "Confidence" {
			confidence = st
		}
	}
	confidence.run = func() (string, bool) { panic("boom") }

	if !svc.runStage(gen, confidence) {
		t.Fatalf("pipeline should continue after a confidence failure")
	}
	// 出错后不能沿用之前的乐观分数
	if r := session.Resolution(); r.Score != 50 || r.Status != model.StatusNotResolved {
		t.Fatalf("expected conservative 50/NOT_RESOLVED after stage failure, got %+v", r)
	}
	if got := session.Panels().Confidence; got != "Confidence error: boom" {
		t.Fatalf("expected panel error text, got %q", got)
	}
}

func TestEngineerMetricsRecordedWhileBusy(t *testing.T) {
	presenter := &recordingPresenter{}
	svc, session := newTestAnalysisService(presenter)
	session.AppendMessage(model.RoleCustomer, "my scan is stuck")
	msg := session.AppendMessage(model.RoleEngineer, "Please restart the program and run the scan again")

	svc.busy.Store(true)
	svc.Run(msg)
	svc.busy.Store(false)

	if len(presenter.updates) != 0 {
		t.Fatalf("busy pipeline must skip the analysis, got %d updates", len(presenter.updates))
	}
	// 指标记录在忙碌跳过之前完成
	if m := session.Metrics(); m.MessagesSent != 1 {
		t.Fatalf("expected engineer reply counted despite busy pipeline, got %+v", m)
	}
}

func TestSatisfactionSampledPerEngineerMessage(t *testing.T) {
	presenter := &recordingPresenter{}
	svc, session := newTestAnalysisService(presenter)

	msg := session.AppendMessage(model.RoleCustomer,
		"Thank you so much, everything is working perfectly now!")
	svc.Run(msg)
	if m := session.Metrics(); len(m.SatisfactionTrend) != 0 {
		t.Fatalf("customer messages must not add trend samples, got %v", m.SatisfactionTrend)
	}

	reply := session.AppendMessage(model.RoleEngineer,
		"Glad to hear the scan completed, anything else I can check for you?")
	svc.Run(reply)
	m := session.Metrics()
	if len(m.SatisfactionTrend) != 1 || m.SatisfactionTrend[0] != 95 {
		t.Fatalf("expected one 95%% sample after the engineer reply, got %v", m.SatisfactionTrend)
	}
}
