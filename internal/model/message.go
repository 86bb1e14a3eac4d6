package model

import "time"

// Role 消息角色
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEngineer Role = "engineer"
	RoleSystem   Role = "system"
)

// Message 会话消息（追加后不可变）
type Message struct {
	MessageID string    `json:"messageId"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// SubmitMessageRequest 提交消息请求
type SubmitMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// SubmitMessageResponse 提交消息响应
type SubmitMessageResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Message   string `json:"message"`
}

// EndConversationResponse 结束会话响应
type EndConversationResponse struct {
	Ended         bool      `json:"ended"`
	Message       string    `json:"message"`
	TotalMessages int       `json:"totalMessages"`
	Transcript    []Message `json:"transcript,omitempty"`
}

// PanelUpdate 推送给仪表盘的面板更新
type PanelUpdate struct {
	Type      string    `json:"type"` // PANEL_UPDATE, HEARTBEAT_ACK
	Panel     string    `json:"panel,omitempty"`
	Content   string    `json:"content,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
