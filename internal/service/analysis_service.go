package service

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sentriguide/sentriguide-go/internal/model"
	"go.uber.org/zap"
)

// Presenter 面板内容的推送出口，由 WebSocket 仪表盘实现
type Presenter interface {
	Publish(panel, content string)
}

// AnalysisService 分析流水线编排器。
// 每条新消息触发一轮五阶段流水线；流水线运行中到达的触发直接跳过，
// 会话结束后代数失配的发布全部丢弃。
type AnalysisService struct {
	session    *SessionService
	summary    *SummaryService
	sentiment  *SentimentService
	confidence *ConfidenceService
	knowledge  *KnowledgeService
	coaching   *CoachingService
	metrics    *MetricsService
	presenter  Presenter
	stagePause time.Duration
	busy       atomic.Bool
	logger     *zap.Logger
}

// NewAnalysisService 创建分析流水线编排器
func NewAnalysisService(session *SessionService, summary *SummaryService,
	sentiment *SentimentService, confidence *ConfidenceService,
	knowledge *KnowledgeService, coaching *CoachingService,
	metrics *MetricsService, presenter Presenter,
	stagePause time.Duration, logger *zap.Logger) *AnalysisService {

	return &AnalysisService{
		session:    session,
		summary:    summary,
		sentiment:  sentiment,
		confidence: confidence,
		knowledge:  knowledge,
		coaching:   coaching,
		metrics:    metrics,
		presenter:  presenter,
		stagePause: stagePause,
		logger:     logger,
	}
}

type pipelineStage struct {
	name    string
	panel   string
	start   string
	done    string
	run     func() (string, bool)
	onError func()
}

// Run 执行一轮分析流水线。同步执行，调用方自行决定是否放入 goroutine。
func (s *AnalysisService) Run(trigger model.Message) {
	// 工程师每条回复都计入会话指标并采样满意度，忙碌跳过只作用于分析本身
	if trigger.Role == model.RoleEngineer {
		satisfaction := s.session.Sentiment().Satisfaction
		s.session.UpdateMetrics(func(m *model.SessionMetrics) {
			s.metrics.RecordResponse(m, len(trigger.Content), time.Now())
			s.metrics.TrackSatisfaction(m, satisfaction)
		})
	}

	if !s.busy.CompareAndSwap(false, true) {
		s.logger.Info("分析流水线运行中，跳过本次触发",
			zap.String("role", string(trigger.Role)))
		return
	}
	defer s.busy.Store(false)

	gen := s.session.Generation()

	stages := s.buildStages(gen, trigger)
	for i, st := range stages {
		if !s.runStage(gen, st) {
			s.logger.Info("会话已结束，终止流水线", zap.String("stage", st.name))
			return
		}
		if i < len(stages)-1 {
			time.Sleep(s.stagePause)
		}
	}

	s.publish(gen, "status", "Analysis complete")
}

func (s *AnalysisService) buildStages(gen uint64, trigger model.Message) []pipelineStage {
	stages := []pipelineStage{{
		name:  "Summary",
		panel: "context",
		start: "Analyzing conversation context...",
		done:  "Context updated",
		run: func() (string, bool) {
			return s.summary.Summarize(s.session.Messages())
		},
	}}

	if trigger.Role == model.RoleCustomer {
		stages = append(stages, pipelineStage{
			name:  "Sentiment",
			panel: "sentiment",
			start: "Analyzing customer emotion...",
			done:  "Emotion analysis complete",
			run: func() (string, bool) {
				state := s.sentiment.Analyze(trigger.Content)
				if !s.session.SetSentiment(gen, state) {
					return "", false
				}
				return state.Analysis, true
			},
		})
	}

	stages = append(stages, pipelineStage{
		name:  "Confidence",
		panel: "confidence",
		start: "Evaluating resolution confidence...",
		done:  "Confidence evaluation complete",
		run: func() (string, bool) {
			state := s.confidence.Analyze(s.session.Messages())
			if !s.session.SetResolution(gen, state) {
				return "", false
			}
			return state.Analysis, true
		},
		// 评估出错时退回保守判定，不沿用之前的分数
		onError: func() {
			s.session.SetResolution(gen, model.ResolutionState{
				Score:  50,
				Status: model.StatusNotResolved,
			})
		},
	})

	if trigger.Role == model.RoleCustomer {
		stages = append(stages, pipelineStage{
			name:  "Knowledge",
			panel: "knowledge",
			start: "Searching knowledge base...",
			done:  "Knowledge base search complete",
			run: func() (string, bool) {
				result := s.knowledge.Lookup(trigger.Content)
				s.session.AddSolution(s.knowledge.BuildHistoryEntry(trigger.Content, result))
				return result.Rendered, true
			},
		})
	}

	stages = append(stages, pipelineStage{
		name:  "Coaching",
		panel: "coaching",
		start: "Generating coaching feedback...",
		done:  "Coaching feedback ready",
		run:   func() (string, bool) { return s.runCoaching(gen) },
	})

	return stages
}

// runCoaching 组合实时仪表盘与辅导反馈为同一面板
func (s *AnalysisService) runCoaching(gen uint64) (string, bool) {
	messages := s.session.Messages()
	engineerMsg := latestEngineerMessage(messages)
	sentiment := s.session.Sentiment()
	resolution := s.session.Resolution()

	perf, feedback := s.coaching.Coach(engineerMsg, sentiment, resolution, len(messages))
	if !s.session.SetPerformance(gen, perf) {
		return "", false
	}

	dashboard := s.metrics.Dashboard(s.session.Metrics(), sentiment, resolution, perf,
		len(messages), time.Now())

	return dashboard + "\n" + strings.Repeat("=", 60) + "\n\n" + feedback, true
}

func latestEngineerMessage(messages []model.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == model.RoleEngineer {
			return messages[i].Content
		}
	}
	return ""
}

// runStage 执行单个阶段；阶段内 panic 转为面板错误文本，流水线继续
func (s *AnalysisService) runStage(gen uint64, st pipelineStage) bool {
	if !s.publish(gen, "status", st.start) {
		return false
	}

	content, publishResult, err := s.safeRun(st.run)
	if err != nil {
		s.logger.Error("分析阶段异常",
			zap.String("stage", st.name),
			zap.Error(err))
		if st.onError != nil {
			st.onError()
		}
		if !s.publish(gen, st.panel, fmt.Sprintf("%s error: %v", st.name, err)) {
			return false
		}
	} else if publishResult {
		if !s.publish(gen, st.panel, content) {
			return false
		}
	}

	return s.publish(gen, "status", st.done)
}

func (s *AnalysisService) safeRun(run func() (string, bool)) (content string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	content, ok = run()
	return content, ok, nil
}

// publish 面板内容先落会话状态，代数有效时再推送仪表盘
func (s *AnalysisService) publish(gen uint64, panel, content string) bool {
	if !s.session.SetPanel(gen, panel, content) {
		return false
	}
	if s.presenter != nil {
		s.presenter.Publish(panel, content)
	}
	return true
}
