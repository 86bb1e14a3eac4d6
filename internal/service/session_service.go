package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sentriguide/sentriguide-go/internal/model"
	"go.uber.org/zap"
)

const (
	conversationKey = "sentriguide:conversation"
	solutionsKey    = "sentriguide:solutions"
	mirrorTTL       = 24 * time.Hour

	solutionHistoryCap = 10
)

// 会话结束时追加到转写记录的系统消息
const conversationEndedMarker = "═══ CONVERSATION ENDED ═══"

// SessionService 单会话状态服务。
// 进程内状态是唯一权威数据源；Redis 仅作尽力而为的镜像，写失败不影响会话。
type SessionService struct {
	mu          sync.RWMutex
	messages    []model.Message
	panels      model.PanelSnapshot
	sentiment   model.SentimentState
	resolution  model.ResolutionState
	performance model.PerformanceMetrics
	metrics     model.SessionMetrics
	history     []model.SolutionHistoryEntry
	generation  uint64

	redisClient *redis.Client
	logger      *zap.Logger
}

// NewSessionService 创建会话状态服务，redisClient 可为 nil
func NewSessionService(redisClient *redis.Client, logger *zap.Logger) *SessionService {
	return &SessionService{
		sentiment:   model.DefaultSentiment(),
		resolution:  model.ResolutionState{Status: model.StatusNotResolved},
		redisClient: redisClient,
		logger:      logger,
	}
}

// AppendMessage 追加一条会话消息并镜像到 Redis
func (s *SessionService) AppendMessage(role model.Role, content string) model.Message {
	msg := model.Message{
		MessageID: uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	if len(s.messages) == 0 {
		s.metrics = model.SessionMetrics{SessionStart: msg.Timestamp}
	}
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	s.mirrorMessage(msg)
	return msg
}

// mirrorMessage 尽力而为地把消息写入 Redis 列表
func (s *SessionService) mirrorMessage(msg model.Message) {
	s.mirrorAppend(conversationKey, msg)
}

func (s *SessionService) mirrorAppend(key string, v interface{}) {
	if s.redisClient == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Warn("序列化失败，跳过 Redis 镜像", zap.String("key", key), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.RPush(ctx, key, data).Err(); err != nil {
		s.logger.Warn("Redis 镜像写入失败", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.redisClient.Expire(ctx, key, mirrorTTL).Err(); err != nil {
		s.logger.Warn("Redis 过期时间设置失败", zap.String("key", key), zap.Error(err))
	}
}

// Messages 返回会话消息快照
func (s *SessionService) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Generation 返回当前会话代数，结束会话后递增
func (s *SessionService) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// SetPanel 更新指定面板内容；代数不匹配说明会话已结束，丢弃本次更新
func (s *SessionService) SetPanel(generation uint64, panel, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return false
	}

	switch panel {
	case "context":
		s.panels.Context = content
	case "sentiment":
		s.panels.Sentiment = content
	case "confidence":
		s.panels.Confidence = content
	case "knowledge":
		s.panels.Knowledge = content
	case "coaching":
		s.panels.Coaching = content
	case "status":
		s.panels.Status = content
	}
	return true
}

// Panels 返回面板快照
func (s *SessionService) Panels() model.PanelSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.panels
}

// Sentiment 返回当前情绪状态
func (s *SessionService) Sentiment() model.SentimentState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sentiment
}

// SetSentiment 更新情绪状态；代数不匹配说明会话已结束，丢弃本次更新
func (s *SessionService) SetSentiment(generation uint64, state model.SentimentState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return false
	}
	s.sentiment = state
	return true
}

// Resolution 返回当前解决置信度
func (s *SessionService) Resolution() model.ResolutionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolution
}

// SetResolution 更新解决置信度；代数不匹配时丢弃
func (s *SessionService) SetResolution(generation uint64, state model.ResolutionState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return false
	}
	s.resolution = state
	return true
}

// Performance 返回最近一次绩效评估
func (s *SessionService) Performance() model.PerformanceMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.performance
}

// SetPerformance 更新绩效评估；代数不匹配时丢弃
func (s *SessionService) SetPerformance(generation uint64, perf model.PerformanceMetrics) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return false
	}
	s.performance = perf
	return true
}

// Metrics 返回会话指标快照
func (s *SessionService) Metrics() model.SessionMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.metrics
	out.SatisfactionTrend = append([]int(nil), s.metrics.SatisfactionTrend...)
	return out
}

// UpdateMetrics 在锁内修改会话指标
func (s *SessionService) UpdateMetrics(fn func(*model.SessionMetrics)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.metrics)
}

// AddSolution 记录一条解决方案历史，超过容量时淘汰最旧条目
func (s *SessionService) AddSolution(entry model.SolutionHistoryEntry) {
	s.mu.Lock()
	s.history = append(s.history, entry)
	if len(s.history) > solutionHistoryCap {
		s.history = s.history[len(s.history)-solutionHistoryCap:]
	}
	s.mu.Unlock()

	s.mirrorAppend(solutionsKey, entry)
}

// Solutions 返回解决方案历史快照（新的在后）
func (s *SessionService) Solutions() []model.SolutionHistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SolutionHistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// ClearSolutions 清空解决方案历史，返回清掉的条数
func (s *SessionService) ClearSolutions() int {
	s.mu.Lock()
	cleared := len(s.history)
	s.history = nil
	s.mu.Unlock()

	s.deleteMirror(solutionsKey)
	return cleared
}

// EndConversation 结束当前会话并清空所有会话级状态。
// 解决方案历史跨会话保留；返回的转写记录末尾带结束标记。
func (s *SessionService) EndConversation() model.EndConversationResponse {
	s.mu.Lock()

	if len(s.messages) == 0 {
		s.mu.Unlock()
		return model.EndConversationResponse{
			Ended:   false,
			Message: "No active conversation to end",
		}
	}

	transcript := make([]model.Message, len(s.messages), len(s.messages)+1)
	copy(transcript, s.messages)
	transcript = append(transcript, model.Message{
		MessageID: uuid.New().String(),
		Role:      model.RoleSystem,
		Content:   conversationEndedMarker,
		Timestamp: time.Now(),
	})
	total := len(s.messages)

	s.messages = nil
	s.panels = model.PanelSnapshot{Status: "Conversation ended - ready for a new session"}
	s.sentiment = model.DefaultSentiment()
	s.resolution = model.ResolutionState{Status: model.StatusNotResolved}
	s.performance = model.PerformanceMetrics{}
	s.metrics = model.SessionMetrics{}
	s.generation++
	s.mu.Unlock()

	s.deleteMirror(conversationKey)
	s.logger.Info("会话已结束", zap.Int("totalMessages", total))

	return model.EndConversationResponse{
		Ended:         true,
		Message:       "Conversation ended and session state cleared",
		TotalMessages: total,
		Transcript:    transcript,
	}
}

func (s *SessionService) deleteMirror(key string) {
	if s.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("Redis 镜像清理失败", zap.String("key", key), zap.Error(err))
	}
}
