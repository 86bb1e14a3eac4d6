package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sentriguide/sentriguide-go/internal/model"
	"github.com/sentriguide/sentriguide-go/internal/service"
	"go.uber.org/zap"
)

func setupDashboard(t *testing.T) (*DashboardHub, *service.SessionService, *websocket.Conn) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessionService := service.NewSessionService(nil, zap.NewNop())
	hub := NewDashboardHub(sessionService, zap.NewNop())

	r := gin.New()
	r.GET("/ws/dashboard", hub.HandleDashboard)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/dashboard"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return hub, sessionService, conn
}

func readUpdate(t *testing.T, conn *websocket.Conn) model.PanelUpdate {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update model.PanelUpdate
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return update
}

func TestDashboardReceivesSnapshotOnConnect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessionService := service.NewSessionService(nil, zap.NewNop())
	sessionService.SetPanel(0, "sentiment", "existing panel")

	hub := NewDashboardHub(sessionService, zap.NewNop())
	r := gin.New()
	r.GET("/ws/dashboard", hub.HandleDashboard)
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/dashboard"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	update := readUpdate(t, conn)
	if update.Type != "PANEL_UPDATE" || update.Panel != "sentiment" || update.Content != "existing panel" {
		t.Fatalf("unexpected snapshot update %+v", update)
	}
}

func TestDashboardBroadcast(t *testing.T) {
	hub, _, conn := setupDashboard(t)

	// 等连接注册完成再广播
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	hub.Publish("knowledge", "broadcast text")

	update := readUpdate(t, conn)
	if update.Panel != "knowledge" || update.Content != "broadcast text" {
		t.Fatalf("unexpected broadcast %+v", update)
	}
}

func TestDashboardHeartbeat(t *testing.T) {
	_, _, conn := setupDashboard(t)

	if err := conn.WriteJSON(model.PanelUpdate{Type: "HEARTBEAT"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	update := readUpdate(t, conn)
	if update.Type != "HEARTBEAT_ACK" {
		t.Fatalf("expected heartbeat ack, got %+v", update)
	}
}
