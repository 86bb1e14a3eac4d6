package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sentriguide/sentriguide-go/internal/model"
	"github.com/sentriguide/sentriguide-go/internal/service"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 仪表盘跑在本机，放开 Origin 检查
		return true
	},
}

// dashboardClient 单个仪表盘连接，写操作需要串行
type dashboardClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *dashboardClient) send(update model.PanelUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(update)
}

// DashboardHub 仪表盘连接集线器。
// 实现 service.Presenter，把面板更新广播给所有已连接的仪表盘。
type DashboardHub struct {
	mu             sync.RWMutex
	clients        map[*dashboardClient]bool
	sessionService *service.SessionService
	logger         *zap.Logger
}

// NewDashboardHub 创建仪表盘集线器
func NewDashboardHub(sessionService *service.SessionService, logger *zap.Logger) *DashboardHub {
	return &DashboardHub{
		clients:        make(map[*dashboardClient]bool),
		sessionService: sessionService,
		logger:         logger,
	}
}

// Publish 广播一条面板更新，写失败的连接直接移除
func (h *DashboardHub) Publish(panel, content string) {
	update := model.PanelUpdate{
		Type:      "PANEL_UPDATE",
		Panel:     panel,
		Content:   content,
		Timestamp: time.Now(),
	}

	h.mu.RLock()
	clients := make([]*dashboardClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.send(update); err != nil {
			h.logger.Warn("仪表盘推送失败，移除连接", zap.Error(err))
			h.remove(c)
		}
	}
}

// ClientCount 当前连接的仪表盘数量
func (h *DashboardHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *DashboardHub) add(c *dashboardClient) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

func (h *DashboardHub) remove(c *dashboardClient) {
	h.mu.Lock()
	if h.clients[c] {
		delete(h.clients, c)
		c.conn.Close()
	}
	h.mu.Unlock()
}

// HandleDashboard 仪表盘 WebSocket 连接入口
func (h *DashboardHub) HandleDashboard(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket 升级失败", zap.Error(err))
		return
	}

	client := &dashboardClient{conn: conn}
	h.add(client)
	defer h.remove(client)

	h.logger.Info("仪表盘连接建立", zap.String("remote", c.ClientIP()))

	// 新连接先补发当前面板快照
	h.sendSnapshot(client)

	// 消息循环，只处理心跳
	for {
		var msg model.PanelUpdate
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket 读取错误", zap.Error(err))
			}
			break
		}

		if msg.Type == "HEARTBEAT" {
			if err := client.send(model.PanelUpdate{Type: "HEARTBEAT_ACK", Timestamp: time.Now()}); err != nil {
				break
			}
			continue
		}

		h.logger.Warn("未知消息类型", zap.String("type", msg.Type))
	}

	h.logger.Info("仪表盘连接断开", zap.String("remote", c.ClientIP()))
}

func (h *DashboardHub) sendSnapshot(client *dashboardClient) {
	panels := h.sessionService.Panels()
	snapshot := []struct {
		panel   string
		content string
	}{
		{"context", panels.Context},
		{"sentiment", panels.Sentiment},
		{"confidence", panels.Confidence},
		{"knowledge", panels.Knowledge},
		{"coaching", panels.Coaching},
		{"status", panels.Status},
	}

	now := time.Now()
	for _, p := range snapshot {
		if p.content == "" {
			continue
		}
		if err := client.send(model.PanelUpdate{
			Type:      "PANEL_UPDATE",
			Panel:     p.panel,
			Content:   p.content,
			Timestamp: now,
		}); err != nil {
			h.logger.Warn("面板快照补发失败", zap.Error(err))
			return
		}
	}
}
