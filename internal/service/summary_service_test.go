package service

import (
	"strings"
	"testing"

	"github.com/sentriguide/sentriguide-go/internal/model"
	"go.uber.org/zap"
)

func TestSummarizeSkipsShortConversations(t *testing.T) {
	svc := NewSummaryService(zap.NewNop())
	if _, ok := svc.Summarize([]model.Message{customerMsg("hello")}); ok {
		t.Fatalf("expected skip for single-message conversation")
	}
}

func TestSummarizeClassifiesMainIssueFromFirstCustomerMessage(t *testing.T) {
	svc := NewSummaryService(zap.NewNop())
	summary, ok := svc.Summarize([]model.Message{
		customerMsg("I think my laptop has a virus"),
		engineerMsg("Let me help you run a scan"),
		customerMsg("my computer is also slow"),
	})
	if !ok {
		t.Fatalf("expected summary to be produced")
	}
	// 分类只看首条客户消息，后续提到 slow 不改变主问题
	if !strings.Contains(summary, "MAIN ISSUE: Malware/Virus concern") {
		t.Fatalf("unexpected main issue:\n%s", summary)
	}
	if !strings.Contains(summary, "TOTAL MESSAGES: 3") {
		t.Fatalf("unexpected message count:\n%s", summary)
	}
	if !strings.Contains(summary, "CURRENT STATE: Initial contact phase") {
		t.Fatalf("unexpected state:\n%s", summary)
	}
	if !strings.Contains(summary, "Latest concern: my computer is also slow") {
		t.Fatalf("latest concern missing:\n%s", summary)
	}
}

func TestSummarizeConversationStateThresholds(t *testing.T) {
	svc := NewSummaryService(zap.NewNop())

	msgs := []model.Message{
		customerMsg("how do I renew"),
		engineerMsg("a"), customerMsg("b"), engineerMsg("c"),
	}
	summary, _ := svc.Summarize(msgs)
	if !strings.Contains(summary, "Active troubleshooting") {
		t.Fatalf("expected active troubleshooting at 4 messages:\n%s", summary)
	}

	for len(msgs) <= 6 {
		msgs = append(msgs, customerMsg("x"))
	}
	summary, _ = svc.Summarize(msgs)
	if !strings.Contains(summary, "Extended conversation - consider escalation") {
		t.Fatalf("expected escalation hint past 6 messages:\n%s", summary)
	}
}

func TestSummarizeDetailedCommunicationStyle(t *testing.T) {
	svc := NewSummaryService(zap.NewNop())
	long := strings.Repeat("my email keeps flagging phishing attempts and ", 4)
	summary, _ := svc.Summarize([]model.Message{
		customerMsg(long),
		engineerMsg("ok"),
	})
	if !strings.Contains(summary, "MAIN ISSUE: Email security") {
		t.Fatalf("unexpected main issue:\n%s", summary)
	}
	if !strings.Contains(summary, "Communication style: Detailed") {
		t.Fatalf("expected detailed style for long first message:\n%s", summary)
	}
	if strings.Contains(summary, long) {
		t.Fatalf("latest concern should be truncated to 100 chars")
	}
}
