package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sentriguide/sentriguide-go/internal/model"
	"github.com/sentriguide/sentriguide-go/internal/service"
	"github.com/sentriguide/sentriguide-go/internal/textmatch"
	"go.uber.org/zap"
)

// APIHandler REST API 处理器
type APIHandler struct {
	sessionService  *service.SessionService
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

// NewAPIHandler 创建 API 处理器
func NewAPIHandler(sessionService *service.SessionService, analysisService *service.AnalysisService, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		sessionService:  sessionService,
		analysisService: analysisService,
		logger:          logger,
	}
}

// SubmitCustomerMessage 提交客户消息并触发分析流水线
func (h *APIHandler) SubmitCustomerMessage(c *gin.Context) {
	h.submitMessage(c, model.RoleCustomer)
}

// SubmitEngineerMessage 提交工程师回复并触发分析流水线
func (h *APIHandler) SubmitEngineerMessage(c *gin.Context) {
	h.submitMessage(c, model.RoleEngineer)
}

func (h *APIHandler) submitMessage(c *gin.Context, role model.Role) {
	var req model.SubmitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	msg := h.sessionService.AppendMessage(role, req.Content)
	h.logger.Info("收到会话消息",
		zap.String("role", string(role)),
		zap.String("messageId", msg.MessageID),
		zap.Int("length", len(req.Content)))

	// 分析流水线异步执行，接口立即返回
	go h.analysisService.Run(msg)

	c.JSON(http.StatusOK, model.SubmitMessageResponse{
		Success:   true,
		MessageID: msg.MessageID,
		Message:   "Message received, analysis in progress",
	})
}

// EndConversation 结束当前会话
func (h *APIHandler) EndConversation(c *gin.Context) {
	resp := h.sessionService.EndConversation()
	c.JSON(http.StatusOK, resp)
}

// GetPanels 返回五个面板的当前内容
func (h *APIHandler) GetPanels(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.Panels())
}

// ListSolutions 解决方案历史列表，新条目在前，不含完整正文
func (h *APIHandler) ListSolutions(c *gin.Context) {
	solutions := h.sessionService.Solutions()

	items := make([]gin.H, 0, len(solutions))
	for i := len(solutions) - 1; i >= 0; i-- {
		s := solutions[i]
		items = append(items, gin.H{
			"index":     len(solutions) - 1 - i,
			"label":     historyLabel(len(items)+1, s),
			"timestamp": s.Timestamp,
			"query":     s.CustomerQuery,
			"type":      s.SolutionType,
			"summary":   s.SolutionSummary,
		})
	}

	c.JSON(http.StatusOK, gin.H{"solutions": items, "count": len(items)})
}

// GetSolution 按序号查看单条解决方案全文，序号与列表一致（0 为最新）
func (h *APIHandler) GetSolution(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid index"})
		return
	}

	solutions := h.sessionService.Solutions()
	if index < 0 || index >= len(solutions) {
		c.JSON(http.StatusNotFound, gin.H{"error": "solution not found"})
		return
	}

	entry := solutions[len(solutions)-1-index]
	c.JSON(http.StatusOK, gin.H{
		"solution": entry,
		"hint":     historyHint(entry.CustomerQuery),
	})
}

// ClearSolutions 清空解决方案历史并报告清除条数
func (h *APIHandler) ClearSolutions(c *gin.Context) {
	cleared := h.sessionService.ClearSolutions()
	h.logger.Info("解决方案历史已清空", zap.Int("cleared", cleared))
	c.JSON(http.StatusOK, gin.H{"success": true, "cleared": cleared})
}

// historyLabel 历史列表条目的展示标签
func historyLabel(position int, s model.SolutionHistoryEntry) string {
	query := s.CustomerQuery
	if short := textmatch.Truncate(query, 40); short != query {
		query = short + "..."
	}
	return fmt.Sprintf("#%d [%s] %s - %s",
		position, s.Timestamp.Format("01/02 15:04"), s.SolutionType, query)
}

// historyHint 按历史查询词给出快捷操作提示
func historyHint(query string) string {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "renew"):
		return "⚡ Quick: Check account portal subscription status first"
	case strings.Contains(lower, "install"):
		return "⚡ Quick: Verify system requirements before reinstalling"
	case strings.Contains(lower, "virus") || strings.Contains(lower, "malware"):
		return "⚡ Quick: Run full scan, check quarantine"
	default:
		return "📋 Follow the saved solution steps in order"
	}
}

// Health 健康检查
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "UP",
		"service":  "sentriguide",
		"messages": len(h.sessionService.Messages()),
	})
}
